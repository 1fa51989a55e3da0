package cliconfig

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/bft-labs/hdrs/internal/domain"
)

// methodValue is a pflag.Value that only accepts get or post.
type methodValue struct {
	dst *string
}

var _ pflag.Value = (*methodValue)(nil)

// NewMethodValue returns a flag value that writes into dst.
func NewMethodValue(dst *string) pflag.Value {
	return &methodValue{dst: dst}
}

func (m *methodValue) String() string {
	if m.dst == nil {
		return ""
	}
	return *m.dst
}

func (m *methodValue) Set(s string) error {
	if _, err := domain.ParseMethod(s); err != nil {
		return err
	}
	*m.dst = s
	return nil
}

func (m *methodValue) Type() string {
	return strings.Join(domain.Methods, "|")
}
