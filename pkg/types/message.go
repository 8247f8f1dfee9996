// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// MessageType is the message-type value of a Crossref response envelope. A
// compiled route knows which one it expects, so the decoder can check it.
type MessageType string

const (
	MessageWork         MessageType = "work"
	MessageWorkList     MessageType = "work-list"
	MessageWorkAgency   MessageType = "work-agency"
	MessageJournal      MessageType = "journal"
	MessageJournalList  MessageType = "journal-list"
	MessageFunder       MessageType = "funder"
	MessageFunderList   MessageType = "funder-list"
	MessageMember       MessageType = "member"
	MessageMemberList   MessageType = "member-list"
	MessagePrefix       MessageType = "prefix"
	MessageWorkType     MessageType = "type"
	MessageWorkTypeList MessageType = "type-list"
)
