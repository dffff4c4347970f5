package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the types that live in the record store. Field order
// is part of the stored format; append new fields at the end only.

var (
	fieldsMUS = ord.NewMapSer[string, string](ord.String, ord.String)
	vectorMUS = ord.NewSliceSer[float32](raw.Float32)
)

// IDMUS serializes IDs as varint-encoded uint64 values.
var IDMUS = idMUS{}

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

// EmbeddedRecordMUS serializes EmbeddedRecord values.
// Timestamps are stored with microsecond precision.
var EmbeddedRecordMUS = embeddedRecordMUS{}

type embeddedRecordMUS struct{}

func (embeddedRecordMUS) Marshal(r EmbeddedRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(r.Id, bs)
	n += ord.String.Marshal(r.SourceDocumentId, bs[n:])
	n += fieldsMUS.Marshal(r.Fields, bs[n:])
	n += ord.String.Marshal(r.Content, bs[n:])
	n += vectorMUS.Marshal(r.Vector, bs[n:])
	n += raw.TimeUnixMicro.Marshal(r.CreatedAt, bs[n:])
	n += raw.TimeUnixMicro.Marshal(r.InsertedAt, bs[n:])
	return n
}

func (embeddedRecordMUS) Unmarshal(bs []byte) (r EmbeddedRecord, n int, err error) {
	var n1 int
	r.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return r, n, err
	}
	r.SourceDocumentId, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return r, n, err
	}
	r.Fields, n1, err = fieldsMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return r, n, err
	}
	r.Content, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return r, n, err
	}
	r.Vector, n1, err = vectorMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return r, n, err
	}
	r.CreatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return r, n, err
	}
	r.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return r, n, err
}

func (embeddedRecordMUS) Size(r EmbeddedRecord) (size int) {
	size = IDMUS.Size(r.Id)
	size += ord.String.Size(r.SourceDocumentId)
	size += fieldsMUS.Size(r.Fields)
	size += ord.String.Size(r.Content)
	size += vectorMUS.Size(r.Vector)
	size += raw.TimeUnixMicro.Size(r.CreatedAt)
	size += raw.TimeUnixMicro.Size(r.InsertedAt)
	return size
}

func (embeddedRecordMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return n, err
	}
	for _, skip := range []func([]byte) (int, error){
		ord.String.Skip, fieldsMUS.Skip, ord.String.Skip, vectorMUS.Skip,
		raw.TimeUnixMicro.Skip, raw.TimeUnixMicro.Skip,
	} {
		n1, err = skip(bs[n:])
		n += n1
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Round timestamps the way the serializer will so equality survives a
// marshal/unmarshal cycle in tests.
func TruncateToStoredPrecision(t time.Time) time.Time {
	return t.Truncate(time.Microsecond)
}
