// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	mapFWMJDO6fNMΔjqlgd4wQkPgΞΞ   = ord.NewMapSer[string, string](ord.String, ord.String)
	mapvVODzqbBUKyΔGT7tWWaKgAΞΞ   = ord.NewMapSer[SectionName, string](SectionNameMUS, ord.String)
	sliceVYF81dXoJS4649wsJExc7QΞΞ = ord.NewSliceSer[float32](varint.Float32)
)

var SectionNameMUS = sectionNameMUS{}

type sectionNameMUS struct{}

func (s sectionNameMUS) Marshal(v SectionName, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s sectionNameMUS) Unmarshal(bs []byte) (v SectionName, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = SectionName(tmp)
	return
}

func (s sectionNameMUS) Size(v SectionName) (size int) {
	return ord.String.Size(string(v))
}

func (s sectionNameMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var CandidateRecordMUS = candidateRecordMUS{}

type candidateRecordMUS struct{}

func (s candidateRecordMUS) Marshal(v CandidateRecord, bs []byte) (n int) {
	n = ord.String.Marshal(v.ID, bs)
	n += ord.String.Marshal(v.FullText, bs[n:])
	n += ord.String.Marshal(v.FullTextExcerpt, bs[n:])
	n += mapvVODzqbBUKyΔGT7tWWaKgAΞΞ.Marshal(v.SectionExcerpts, bs[n:])
	n += sliceVYF81dXoJS4649wsJExc7QΞΞ.Marshal(v.Embedding, bs[n:])
	n += sliceVYF81dXoJS4649wsJExc7QΞΞ.Marshal(v.SkillsVector, bs[n:])
	n += sliceVYF81dXoJS4649wsJExc7QΞΞ.Marshal(v.ExperienceVector, bs[n:])
	n += mapFWMJDO6fNMΔjqlgd4wQkPgΞΞ.Marshal(v.Metadata, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s candidateRecordMUS) Unmarshal(bs []byte) (v CandidateRecord, n int, err error) {
	v.ID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.FullText, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.FullTextExcerpt, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SectionExcerpts, n1, err = mapvVODzqbBUKyΔGT7tWWaKgAΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Embedding, n1, err = sliceVYF81dXoJS4649wsJExc7QΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SkillsVector, n1, err = sliceVYF81dXoJS4649wsJExc7QΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ExperienceVector, n1, err = sliceVYF81dXoJS4649wsJExc7QΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Metadata, n1, err = mapFWMJDO6fNMΔjqlgd4wQkPgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s candidateRecordMUS) Size(v CandidateRecord) (size int) {
	size = ord.String.Size(v.ID)
	size += ord.String.Size(v.FullText)
	size += ord.String.Size(v.FullTextExcerpt)
	size += mapvVODzqbBUKyΔGT7tWWaKgAΞΞ.Size(v.SectionExcerpts)
	size += sliceVYF81dXoJS4649wsJExc7QΞΞ.Size(v.Embedding)
	size += sliceVYF81dXoJS4649wsJExc7QΞΞ.Size(v.SkillsVector)
	size += sliceVYF81dXoJS4649wsJExc7QΞΞ.Size(v.ExperienceVector)
	size += mapFWMJDO6fNMΔjqlgd4wQkPgΞΞ.Size(v.Metadata)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s candidateRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = mapvVODzqbBUKyΔGT7tWWaKgAΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceVYF81dXoJS4649wsJExc7QΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceVYF81dXoJS4649wsJExc7QΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceVYF81dXoJS4649wsJExc7QΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = mapFWMJDO6fNMΔjqlgd4wQkPgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
