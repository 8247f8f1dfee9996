// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package response

import (
	"fmt"

	"github.com/pdiddy/crossref/pkg/types"
)

// Envelope is the outer object of every API response. Only Message carries
// the payload; it is left untyped for the entity decoders.
type Envelope struct {
	Status         string            `json:"status"`
	MessageType    types.MessageType `json:"message-type"`
	MessageVersion string            `json:"message-version,omitempty"`
	Message        any               `json:"message"`
}

// DecodeEnvelope checks the outer shape of a response.
func DecodeEnvelope(v any) (Envelope, error) {
	m, err := topObject(v)
	if err != nil {
		return Envelope{}, err
	}
	f := fields{m, &decoder{}}
	var e Envelope
	if e.Status, err = f.str("status"); err != nil {
		return Envelope{}, err
	}
	mt, err := f.str("message-type")
	if err != nil {
		return Envelope{}, err
	}
	e.MessageType = types.MessageType(mt)
	e.MessageVersion = f.optStr("message-version")
	if e.Message, err = required(f, "message", toAny); err != nil {
		return Envelope{}, err
	}
	return e, nil
}

// Expect fails unless the envelope is ok and carries message type mt.
func (e Envelope) Expect(mt types.MessageType) error {
	if e.Status != "ok" {
		return &types.InvalidMessageTypeError{Description: fmt.Sprintf("status %q (%s): %v", e.Status, e.MessageType, e.Message)}
	}
	if e.MessageType != mt {
		return &types.InvalidMessageTypeError{Description: fmt.Sprintf("expected %s, got %s", mt, e.MessageType)}
	}
	return nil
}

// DecodeMessage unwraps an envelope, checks its message type and decodes the
// message with decode.
//
//	w, err := response.DecodeMessage(tree, types.MessageWork, response.DecodeWork)
func DecodeMessage[T any](v any, mt types.MessageType, decode func(any, ...Option) (T, error), opts ...Option) (T, error) {
	var zero T
	env, err := DecodeEnvelope(v)
	if err != nil {
		return zero, err
	}
	if err := env.Expect(mt); err != nil {
		return zero, err
	}
	out, err := decode(env.Message, opts...)
	if err != nil {
		return zero, fmt.Errorf("decoding %s: %w", mt, err)
	}
	return out, nil
}

// Typed decodes the message according to the envelope's message type. It
// returns Work, WorkList, WorkAgency, Journal or JournalList; messages of
// other types come back untyped.
func (e Envelope) Typed(opts ...Option) (any, error) {
	if e.Status != "ok" {
		return nil, e.Expect(e.MessageType)
	}
	var (
		out any
		err error
	)
	switch e.MessageType {
	case types.MessageWork:
		out, err = DecodeWork(e.Message, opts...)
	case types.MessageWorkList:
		out, err = DecodeWorkList(e.Message, opts...)
	case types.MessageWorkAgency:
		out, err = DecodeWorkAgency(e.Message, opts...)
	case types.MessageJournal:
		out, err = DecodeJournal(e.Message, opts...)
	case types.MessageJournalList:
		out, err = DecodeJournalList(e.Message, opts...)
	default:
		return e.Message, nil
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", e.MessageType, err)
	}
	return out, nil
}
