// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PostCollection is the NSID of the feed post record type. It is used both as
// the collection of the createRecord call and as the record's $type.
const PostCollection = "app.bsky.feed.post"

// createdAtLayout is RFC 3339 with millisecond precision, the form the
// AT Protocol datetime format expects.
const createdAtLayout = "2006-01-02T15:04:05.000Z07:00"

// Post is the transient value a user submits. It is never persisted locally
// and lives only for the duration of one createRecord request.
type Post struct {
	Text      string
	CreatedAt time.Time
}

// NewPost returns a Post stamped with now converted to UTC.
func NewPost(text string, now time.Time) Post {
	return Post{Text: text, CreatedAt: now.UTC()}
}

// Record converts the post into its wire representation.
func (p Post) Record() PostRecord {
	return PostRecord{
		Type:      PostCollection,
		Text:      p.Text,
		CreatedAt: p.CreatedAt.UTC().Format(createdAtLayout),
	}
}

// PostRecord is the app.bsky.feed.post record as sent on the wire.
type PostRecord struct {
	Type      string `json:"$type"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

// CreateRecordRequest is the body of com.atproto.repo.createRecord.
type CreateRecordRequest struct {
	Collection string     `json:"collection"`
	Repo       string     `json:"repo"`
	Record     PostRecord `json:"record"`
}

// NewCreatePostRequest builds the createRecord body that publishes post into
// the repo identified by did.
func NewCreatePostRequest(did string, post Post) CreateRecordRequest {
	return CreateRecordRequest{
		Collection: PostCollection,
		Repo:       did,
		Record:     post.Record(),
	}
}
