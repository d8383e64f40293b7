package pagetable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ParseIntent(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Intent
		wantErr bool
	}{
		{"short previous", "p", Previous(), false},
		{"prev", "prev", Previous(), false},
		{"previous mixed case", " Previous ", Previous(), false},
		{"short next", "n", Next(), false},
		{"next", "NEXT", Next(), false},
		{"page number", "7", JumpTo(7), false},
		{"page number with spaces", " 12 ", JumpTo(12), false},
		{"garbage", "forward", Intent{}, true},
		{"empty", "", Intent{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIntent(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownIntent)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.True(t, got.Kind.Valid())
		})
	}
}

func Test_Intent_String(t *testing.T) {
	require.Equal(t, "previous", Previous().String())
	require.Equal(t, "next", Next().String())
	require.Equal(t, "jump(3)", JumpTo(3).String())
}
