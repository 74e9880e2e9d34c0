// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chatbot

import "strings"

// topics maps a smalltalk keyword to its canned reply.
var topics = []struct {
	word  string
	reply string
}{
	{"hello", "Greetings."},
	{"hi", "Hi there."},
	{"how", "An interesting question. I never really thought about it."},
	{"weather", "Both good and bad weather should always be appreciated."},
	{"life", "Life always has its ups and downs."},
	{"hot", "Stay cool and drink some water."},
	{"purpose", "Currently I am here for your personal needs."},
	{"thanks", "You're welcome."},
}

// smalltalk collects the canned reply for every word of input that names a
// topic, in input order, or "I see." when no word does.
func smalltalk(words []string) string {
	var replies []string
	for _, w := range words {
		for _, t := range topics {
			if strings.EqualFold(w, t.word) {
				replies = append(replies, t.reply)
			}
		}
	}
	if len(replies) == 0 {
		return "I see."
	}
	return strings.Join(replies, " ")
}
