package model_test

import (
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pushloop/pkg/domain/model"
)

func TestFormatTimestamp(t *testing.T) {
	t.Run("fixed width UTC representation", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*60*60)
		ts := time.Date(2024, 3, 5, 10, 7, 9, 0, jst)
		gt.V(t, model.FormatTimestamp(ts)).Equal("03/05/2024, 01:07:09 AM")
	})

	t.Run("afternoon", func(t *testing.T) {
		ts := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)
		gt.V(t, model.FormatTimestamp(ts)).Equal("12/31/2024, 11:59:59 PM")
	})
}

func TestRender(t *testing.T) {
	t1 := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	t2 := time.Date(2024, 1, 2, 3, 4, 6, 0, time.UTC)

	t.Run("same instant renders identically", func(t *testing.T) {
		a := model.RenderFileContent(model.DefaultFileContent, t1)
		b := model.RenderFileContent(model.DefaultFileContent, t1)
		gt.V(t, a).Equal(b)
		gt.False(t, strings.Contains(a, "{timestamp}"))
	})

	t.Run("different instants differ only in the timestamp", func(t *testing.T) {
		a := model.RenderFileContent("before {timestamp} after", t1)
		b := model.RenderFileContent("before {timestamp} after", t2)
		gt.V(t, a).NotEqual(b)
		gt.V(t, a).Equal("before " + model.FormatTimestamp(t1) + " after")
		gt.V(t, b).Equal("before " + model.FormatTimestamp(t2) + " after")
	})

	t.Run("commit message uses date placeholder", func(t *testing.T) {
		msg := model.RenderCommitMessage(model.DefaultCommitTemplate, t1)
		gt.V(t, msg).Equal("🤖 Auto Push Update 01/02/2024, 03:04:05 AM")
	})

	t.Run("every placeholder occurrence is replaced", func(t *testing.T) {
		ts := model.FormatTimestamp(t1)
		gt.V(t, model.RenderFileContent("{timestamp} / {timestamp}", t1)).Equal(ts + " / " + ts)
		gt.V(t, model.RenderCommitMessage("{date} ({date})", t1)).Equal(ts + " (" + ts + ")")
	})

	t.Run("placeholders are not mixed up", func(t *testing.T) {
		gt.V(t, model.RenderCommitMessage("{timestamp}", t1)).Equal("{timestamp}")
		gt.V(t, model.RenderFileContent("{date}", t1)).Equal("{date}")
	})
}
