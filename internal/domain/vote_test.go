package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVoteValue(t *testing.T) {
	tests := []struct {
		value   int
		want    Disposition
		wantErr bool
	}{
		{value: 1, want: Liked},
		{value: -1, want: Disliked},
		{value: 0, want: None},
		{value: 2, wantErr: true},
		{value: -2, wantErr: true},
		{value: 42, wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseVoteValue(tt.value)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidVoteValue, "value %d", tt.value)
			continue
		}
		require.NoError(t, err, "value %d", tt.value)
		assert.Equal(t, tt.want, got, "value %d", tt.value)
	}
}

// TestTransition_DecisionTable covers all nine (current x requested)
// combinations: four legal single-step transitions, five rejections.
func TestTransition_DecisionTable(t *testing.T) {
	tests := []struct {
		name      string
		current   Disposition
		requested Disposition
		wantOp    VoteOp
		wantErr   bool
	}{
		{name: "none clear rejected", current: None, requested: None, wantErr: true},
		{name: "none like adds like", current: None, requested: Liked, wantOp: AddLike},
		{name: "none dislike adds dislike", current: None, requested: Disliked, wantOp: AddDislike},
		{name: "liked clear removes like", current: Liked, requested: None, wantOp: RemoveLike},
		{name: "liked like rejected", current: Liked, requested: Liked, wantErr: true},
		{name: "liked dislike rejected", current: Liked, requested: Disliked, wantErr: true},
		{name: "disliked clear removes dislike", current: Disliked, requested: None, wantOp: RemoveDislike},
		{name: "disliked like rejected", current: Disliked, requested: Liked, wantErr: true},
		{name: "disliked dislike rejected", current: Disliked, requested: Disliked, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := Transition(tt.current, tt.requested)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrVoteNotAllowed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOp, op)
		})
	}
}

func TestTransition_Deterministic(t *testing.T) {
	// Same inputs always yield the same decision.
	for i := 0; i < 3; i++ {
		op, err := Transition(None, Liked)
		require.NoError(t, err)
		assert.Equal(t, AddLike, op)
	}
}
