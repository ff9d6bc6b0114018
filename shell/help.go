package shell

import (
	"embed"
	"strings"
)

//go:embed helptext/*.txt
var helptextFS embed.FS

func usage() (*Response, error) {
	dat, err := helptextFS.ReadFile("helptext/usage.txt")
	if err != nil {
		return nil, err
	}
	return msg(strings.TrimRight(string(dat), "\n")), nil
}

func usageTopic(topic string) (*Response, error) {
	dat, err := helptextFS.ReadFile("helptext/" + topic + ".txt")
	if err != nil {
		return msg("There is no help text for the topic " + topic), nil
	}
	return msg(strings.TrimRight(string(dat), "\n")), nil
}
