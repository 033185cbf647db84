// Package json routes all JSON encoding through sonic so the whole
// project shares one (fast) implementation.
package json

import (
	"github.com/bytedance/sonic"
)

var (
	Marshal         = sonic.Marshal
	Unmarshal       = sonic.Unmarshal
	MarshalString   = sonic.MarshalString
	UnmarshalString = sonic.UnmarshalString
)
