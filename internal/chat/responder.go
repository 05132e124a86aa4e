package chat

import (
	"context"
	"errors"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"
)

var ErrEmptyMessage = errors.New("message is required")

var namePattern = regexp.MustCompile(`Name:\s*([^\n]+)`)

// Reply is a responder answer with the category it was drawn from.
type Reply struct {
	Category Category
	Text     string
}

// Responder answers a chat message given optional résumé context.
type Responder interface {
	Respond(ctx context.Context, message, resumeContext string) (Reply, error)
}

// CannedResponder picks one of the fixed replies of the message's category.
type CannedResponder struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewCannedResponder seeds selection from src. A nil src uses the clock.
func NewCannedResponder(src rand.Source) *CannedResponder {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &CannedResponder{rnd: rand.New(src)}
}

func (r *CannedResponder) Respond(ctx context.Context, message, resumeContext string) (Reply, error) {
	if err := ctx.Err(); err != nil {
		return Reply{}, err
	}
	if strings.TrimSpace(message) == "" {
		return Reply{}, ErrEmptyMessage
	}

	category := Classify(message)
	replies := cannedReplies[category]
	if len(replies) == 0 {
		return Reply{}, errors.New("no replies for category " + string(category))
	}

	r.mu.Lock()
	i := r.rnd.Intn(len(replies))
	r.mu.Unlock()

	return Reply{Category: category, Text: Personalize(replies[i], resumeContext)}, nil
}

// Personalize greets the user by the name found in context, lowercasing the first
// character of text. Without a name, text is returned unchanged.
func Personalize(text, resumeContext string) string {
	if text == "" {
		return text
	}
	m := namePattern.FindStringSubmatch(resumeContext)
	if m == nil {
		return text
	}
	name := strings.TrimSpace(m[1])
	if name == "" {
		return text
	}
	first, size := utf8.DecodeRuneInString(text)
	return "Hi " + name + ", " + string(unicode.ToLower(first)) + text[size:]
}
