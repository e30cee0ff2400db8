package core

import (
	"time"

	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Hand-maintained MUS serializers used by the storage layer.
// Field order defines the wire format; append new fields at the end only.
var (
	IDMUS          = idSer{}
	JobRecordMUS   = jobRecordSer{}
	SearchEntryMUS = searchEntrySer{}
)

var (
	_ mus.Serializer[ID]          = IDMUS
	_ mus.Serializer[JobRecord]   = JobRecordMUS
	_ mus.Serializer[SearchEntry] = SearchEntryMUS
)

var tagsSer = ord.NewSliceSer[string](ord.String)

type idSer struct{}

func (idSer) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idSer) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idSer) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idSer) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

// timeSer stores timestamps as Unix microseconds. Zero times round-trip as
// year-1 UTC, so callers must not rely on IsZero after a storage round trip.
type timeSer struct{}

func (timeSer) Marshal(t time.Time, bs []byte) int {
	return varint.Int64.Marshal(t.UnixMicro(), bs)
}

func (timeSer) Unmarshal(bs []byte) (time.Time, int, error) {
	v, n, err := varint.Int64.Unmarshal(bs)
	if err != nil {
		return time.Time{}, n, err
	}
	return time.UnixMicro(v).UTC(), n, nil
}

func (timeSer) Size(t time.Time) int {
	return varint.Int64.Size(t.UnixMicro())
}

func (timeSer) Skip(bs []byte) (int, error) {
	return varint.Int64.Skip(bs)
}

var timeMUS = timeSer{}

type jobRecordSer struct{}

func (jobRecordSer) Marshal(j JobRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(j.Id, bs)
	n += ord.String.Marshal(j.Title, bs[n:])
	n += ord.String.Marshal(j.Company, bs[n:])
	n += ord.String.Marshal(j.Location, bs[n:])
	n += ord.String.Marshal(j.Description, bs[n:])
	n += tagsSer.Marshal(j.Tags, bs[n:])
	n += varint.Int.Marshal(int(j.WorkMode), bs[n:])
	n += varint.Int.Marshal(int(j.Tier), bs[n:])
	n += ord.Bool.Marshal(j.IsRemote, bs[n:])
	n += ord.String.Marshal(j.URL, bs[n:])
	n += ord.String.Marshal(j.Source, bs[n:])
	n += timeMUS.Marshal(j.PostedAt, bs[n:])
	n += timeMUS.Marshal(j.InsertedAt, bs[n:])
	n += timeMUS.Marshal(j.UpdatedAt, bs[n:])
	return n
}

func (jobRecordSer) Unmarshal(bs []byte) (j JobRecord, n int, err error) {
	var n1 int
	if j.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	if j.Title, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return j, n + n1, err
	}
	n += n1
	if j.Company, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return j, n + n1, err
	}
	n += n1
	if j.Location, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return j, n + n1, err
	}
	n += n1
	if j.Description, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return j, n + n1, err
	}
	n += n1
	if j.Tags, n1, err = tagsSer.Unmarshal(bs[n:]); err != nil {
		return j, n + n1, err
	}
	n += n1
	var mode, tier int
	if mode, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return j, n + n1, err
	}
	j.WorkMode = WorkMode(mode)
	n += n1
	if tier, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return j, n + n1, err
	}
	j.Tier = Tier(tier)
	n += n1
	if j.IsRemote, n1, err = ord.Bool.Unmarshal(bs[n:]); err != nil {
		return j, n + n1, err
	}
	n += n1
	if j.URL, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return j, n + n1, err
	}
	n += n1
	if j.Source, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return j, n + n1, err
	}
	n += n1
	if j.PostedAt, n1, err = timeMUS.Unmarshal(bs[n:]); err != nil {
		return j, n + n1, err
	}
	n += n1
	if j.InsertedAt, n1, err = timeMUS.Unmarshal(bs[n:]); err != nil {
		return j, n + n1, err
	}
	n += n1
	if j.UpdatedAt, n1, err = timeMUS.Unmarshal(bs[n:]); err != nil {
		return j, n + n1, err
	}
	n += n1
	return j, n, nil
}

func (jobRecordSer) Size(j JobRecord) (size int) {
	size = IDMUS.Size(j.Id)
	size += ord.String.Size(j.Title)
	size += ord.String.Size(j.Company)
	size += ord.String.Size(j.Location)
	size += ord.String.Size(j.Description)
	size += tagsSer.Size(j.Tags)
	size += varint.Int.Size(int(j.WorkMode))
	size += varint.Int.Size(int(j.Tier))
	size += ord.Bool.Size(j.IsRemote)
	size += ord.String.Size(j.URL)
	size += ord.String.Size(j.Source)
	size += timeMUS.Size(j.PostedAt)
	size += timeMUS.Size(j.InsertedAt)
	size += timeMUS.Size(j.UpdatedAt)
	return size
}

func (s jobRecordSer) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return n, err
}

type searchEntrySer struct{}

func (searchEntrySer) Marshal(e SearchEntry, bs []byte) (n int) {
	n = IDMUS.Marshal(e.Id, bs)
	n += ord.String.Marshal(e.Query, bs[n:])
	n += ord.String.Marshal(e.Filters, bs[n:])
	n += varint.Int.Marshal(e.Hits, bs[n:])
	n += timeMUS.Marshal(e.Timestamp, bs[n:])
	return n
}

func (searchEntrySer) Unmarshal(bs []byte) (e SearchEntry, n int, err error) {
	var n1 int
	if e.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	if e.Query, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return e, n + n1, err
	}
	n += n1
	if e.Filters, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return e, n + n1, err
	}
	n += n1
	if e.Hits, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return e, n + n1, err
	}
	n += n1
	if e.Timestamp, n1, err = timeMUS.Unmarshal(bs[n:]); err != nil {
		return e, n + n1, err
	}
	n += n1
	return e, n, nil
}

func (searchEntrySer) Size(e SearchEntry) (size int) {
	size = IDMUS.Size(e.Id)
	size += ord.String.Size(e.Query)
	size += ord.String.Size(e.Filters)
	size += varint.Int.Size(e.Hits)
	size += timeMUS.Size(e.Timestamp)
	return size
}

func (s searchEntrySer) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return n, err
}
