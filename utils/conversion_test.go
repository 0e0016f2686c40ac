package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToPlainValue(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  any
	}{
		{
			name:  "scalars pass through",
			input: "09:00",
			want:  "09:00",
		},
		{
			name:  "nil passes through",
			input: nil,
			want:  nil,
		},
		{
			name: "bson document becomes map",
			input: primitive.D{
				{Key: "online", Value: primitive.D{
					{Key: "monday", Value: primitive.D{
						{Key: "start_time", Value: "09:00"},
					}},
				}},
			},
			want: map[string]any{
				"online": map[string]any{
					"monday": map[string]any{"start_time": "09:00"},
				},
			},
		},
		{
			name:  "bson map becomes map",
			input: primitive.M{"monday": primitive.M{"end_time": "17:00"}},
			want:  map[string]any{"monday": map[string]any{"end_time": "17:00"}},
		},
		{
			name:  "bson array becomes slice",
			input: primitive.A{"monday", primitive.M{"a": int32(1)}},
			want:  []any{"monday", map[string]any{"a": int32(1)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToPlainValue(tt.input))
		})
	}
}
