package networkparser

import (
	"errors"
)

var (
	ErrMalformedLine = errors.New("malformed graph line")
	ErrUnknownMedium = errors.New("unknown wire medium")
)

// wireRecord is one `start end medium bandwidth length` line of a graph file.
type wireRecord struct {
	NumberOfVertices int    `name:"number of vertices" validate:"gte=0"`
	Start            int    `name:"start" validate:"gte=0,ltfield=NumberOfVertices"`
	End              int    `name:"end" validate:"gte=0,ltfield=NumberOfVertices,nefield=Start"`
	Medium           string `name:"medium" validate:"required,oneof=copper optical"`
	Bandwidth        int    `name:"bandwidth" validate:"gt=0"`
	Length           int    `name:"length" validate:"gt=0"`
}
