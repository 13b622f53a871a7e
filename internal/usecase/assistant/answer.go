package assistant

import (
	"skytrak-service/internal/domain/entity"
	"skytrak-service/pkg/utils"
)

// Text is a reference into the message catalog.
type Text struct {
	Key  string
	Args []interface{}
}

// T builds a Text.
func T(key string, args ...interface{}) Text {
	return Text{Key: key, Args: args}
}

// Answer is the language-neutral result of an intent handler.
type Answer struct {
	Summary  Text
	Data     Text
	Lines    []Text
	Action   Text
	FollowUp Text
	Topic    string
	Score    float64
	Page     *utils.Page[entity.Flight]
}
