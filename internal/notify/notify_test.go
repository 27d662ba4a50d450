package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiFansOut(t *testing.T) {
	var got []string
	first := Func(func(n Notification) { got = append(got, "first:"+n.Title) })
	second := Func(func(n Notification) { got = append(got, "second:"+n.Title) })

	Multi{first, second}.Notify(Notification{Title: "hello", Severity: SeverityInfo})

	assert.Equal(t, []string{"first:hello", "second:hello"}, got)
}
