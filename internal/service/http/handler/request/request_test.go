package request

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubmitEditValid(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		form := SubmitEdit{ImageId: 1, Instruction: "make it blue"}
		require.NoError(t, form.Valid())
	})

	t.Run("missing image", func(t *testing.T) {
		form := SubmitEdit{Instruction: "make it blue"}
		require.Error(t, form.Valid())
	})

	t.Run("empty instruction rejected at the boundary", func(t *testing.T) {
		form := SubmitEdit{ImageId: 1, Instruction: ""}
		require.Error(t, form.Valid())
	})

	t.Run("whitespace instruction rejected", func(t *testing.T) {
		form := SubmitEdit{ImageId: 1, Instruction: "   "}
		require.Error(t, form.Valid())
	})
}

func TestGetImageValid(t *testing.T) {
	t.Run("thumbnail only for output", func(t *testing.T) {
		form := GetImage{ID: 1, Type: "input", Thumbnail: true}
		require.Error(t, form.Valid())
	})

	t.Run("bad expire", func(t *testing.T) {
		form := GetImage{ID: 1, Type: "output", Expire: "tomorrow"}
		require.Error(t, form.Valid())
	})

	t.Run("defaults filled", func(t *testing.T) {
		form := GetImage{ID: 1, Type: "output"}
		require.NoError(t, form.Valid())
		form.FullWithDefault()
		require.Equal(t, ExpireDefault, form.Expire)
	})
}

func TestTaskQueryValid(t *testing.T) {
	require.Error(t, (&TaskQuery{}).Valid())
	require.NoError(t, (&TaskQuery{ID: 3}).Valid())
	require.NoError(t, (&TaskQuery{GroupId: "g-1"}).Valid())
}
