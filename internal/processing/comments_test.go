package processing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func rawComment(id, author, text string, likes float64) map[string]any {
	return map[string]any{
		"id": id,
		"snippet": map[string]any{
			"authorDisplayName": author,
			"textOriginal":      text,
			"likeCount":         likes,
			"publishedAt":       "2024-03-02T08:00:00Z",
		},
	}
}

func TestStructureComments_Basic(t *testing.T) {
	threads := []any{
		map[string]any{
			"comment": rawComment("c1", "Ana", "esse vídeo ficou muito bom mesmo", 4),
			"replies": []any{
				rawComment("r1", "Bia", "concordo demais", 1),
				rawComment("r2", "Caio", "também achei", 0),
			},
		},
		map[string]any{
			"comment": rawComment("c2", "Duda", "primeiro", 0),
		},
	}

	structured := StructureComments(threads)
	require.Len(t, structured, 2)

	first := structured[0]
	require.Equal(t, "c1", first.CommentID)
	require.Equal(t, "Ana", first.Author)
	require.Equal(t, "esse vídeo ficou muito bom mesmo", first.Text)
	require.NotNil(t, first.LikeCount)
	require.Equal(t, int64(4), *first.LikeCount)
	require.Equal(t, "2024-03-02T08:00:00Z", first.PublishedAt)
	require.Equal(t, []string{}, first.Flags)

	require.Len(t, first.Replies, 2)
	require.Equal(t, "r1", first.Replies[0].ReplyID)
	require.Equal(t, "r2", first.Replies[1].ReplyID)
	require.NotNil(t, first.Replies[1].LikeCount)
	require.Equal(t, int64(0), *first.Replies[1].LikeCount)

	second := structured[1]
	require.Equal(t, []string{FlagSpam}, second.Flags)
	require.Empty(t, second.Replies)
	require.NotNil(t, second.Replies, "replies always serialize as a list")
}

func TestStructureComments_NotAList(t *testing.T) {
	for name, input := range map[string]any{
		"error sentinel": map[string]any{"error": "comments disabled"},
		"nil":            nil,
		"plain string":   "oops",
	} {
		t.Run(name, func(t *testing.T) {
			require.Empty(t, StructureComments(input))
		})
	}
}

func TestStructureComments_SkipsBadThreads(t *testing.T) {
	threads := []any{
		"not an object",
		map[string]any{"comment": "not an object either"},
		map[string]any{"comment": rawComment("ok", "Eva", "sobrevivi ao lote inteiro", 2)},
	}

	structured := StructureComments(threads)

	require.Len(t, structured, 1)
	require.Equal(t, "ok", structured[0].CommentID)
}

func TestStructureComments_SkipsBadRepliesIndependently(t *testing.T) {
	threads := []any{
		map[string]any{
			"comment": rawComment("c1", "Ana", "texto qualquer aqui mesmo", 0),
			"replies": []any{
				rawComment("r1", "Bia", "ok", 0),
				42, // malformed reply, dropped alone
				rawComment("r3", "Caio", "ainda aqui", 0),
			},
		},
	}

	structured := StructureComments(threads)

	require.Len(t, structured, 1)
	require.Len(t, structured[0].Replies, 2)
	require.Equal(t, "r1", structured[0].Replies[0].ReplyID)
	require.Equal(t, "r3", structured[0].Replies[1].ReplyID)
}

func TestStructureComments_MissingFieldsDegrade(t *testing.T) {
	threads := []any{
		map[string]any{
			"comment": map[string]any{"id": "bare"},
		},
	}

	structured := StructureComments(threads)

	require.Len(t, structured, 1)
	require.Equal(t, "bare", structured[0].CommentID)
	require.Equal(t, "", structured[0].Author)
	require.Nil(t, structured[0].LikeCount)
	require.Equal(t, []string{FlagEmpty}, structured[0].Flags, "absent text flags as empty")
}

func TestStructureComments_MapSliceInput(t *testing.T) {
	threads := []map[string]any{
		{"comment": rawComment("c1", "Ana", "direto do cliente tipado", 1)},
	}

	require.Len(t, StructureComments(threads), 1)
}
