package grapher

import (
	"github.com/shurcooL/go-goon"
	"github.com/ugorji/go/codec"
)

type codecHelper struct {
	initialized bool
	mh          codec.MsgpackHandle
	jh          codec.JsonHandle
}

func (m *codecHelper) init() {
	if m.initialized {
		return
	}
	m.initialized = true
	m.mh.RawToString = true
	m.mh.WriteExt = true
	m.jh.Canonical = true
}

var cdcHelper codecHelper

func init() {
	cdcHelper.init()
}

// SnapshotToJson encodes a registry snapshot as JSON for external
// visualizers that want structure instead of DOT.
func SnapshotToJson(snap *Snapshot) ([]byte, error) {
	var out []byte
	enc := codec.NewEncoderBytes(&out, &cdcHelper.jh)
	if err := enc.Encode(snap); err != nil {
		return nil, err
	}
	return out, nil
}

func JsonToSnapshot(bs []byte) (*Snapshot, error) {
	snap := &Snapshot{}
	dec := codec.NewDecoderBytes(bs, &cdcHelper.jh)
	if err := dec.Decode(snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// SnapshotToMsgpack is the compact binary twin of SnapshotToJson.
func SnapshotToMsgpack(snap *Snapshot) ([]byte, error) {
	var out []byte
	enc := codec.NewEncoderBytes(&out, &cdcHelper.mh)
	if err := enc.Encode(snap); err != nil {
		return nil, err
	}
	return out, nil
}

func MsgpackToSnapshot(bs []byte) (*Snapshot, error) {
	snap := &Snapshot{}
	dec := codec.NewDecoderBytes(bs, &cdcHelper.mh)
	if err := dec.Decode(snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// DumpSnapshot pretty-prints the snapshot, used by the repl's verbose
// dump command.
func DumpSnapshot(snap *Snapshot) {
	goon.Dump(snap)
}
