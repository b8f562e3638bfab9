package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/passvet/passvet/internal/model"
)

func record(attrs ...model.Attribute) *model.AccountRecord {
	return &model.AccountRecord{Attributes: attrs}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		record      *model.AccountRecord
		wantUser    string
		wantDisplay string
		wantFound   bool
	}{
		{
			name:      "nil record",
			record:    nil,
			wantFound: false,
		},
		{
			name:      "empty record",
			record:    record(),
			wantFound: false,
		},
		{
			name: "both attributes present",
			record: record(
				model.Attribute{Name: "uid", Values: []string{"jdoe"}},
				model.Attribute{Name: "gecos", Values: []string{"Jane Doe"}},
			),
			wantUser:    "jdoe",
			wantDisplay: "Jane Doe",
			wantFound:   true,
		},
		{
			name: "username only",
			record: record(
				model.Attribute{Name: "uid", Values: []string{"jdoe"}},
			),
			wantUser:  "jdoe",
			wantFound: true,
		},
		{
			name: "display name only is not a username",
			record: record(
				model.Attribute{Name: "gecos", Values: []string{"Jane Doe"}},
			),
			wantDisplay: "Jane Doe",
			wantFound:   false,
		},
		{
			name: "first value of multi-valued attribute wins",
			record: record(
				model.Attribute{Name: "uid", Values: []string{"jdoe", "jdoe2"}},
			),
			wantUser:  "jdoe",
			wantFound: true,
		},
		{
			name: "first occurrence of repeated attribute wins",
			record: record(
				model.Attribute{Name: "uid", Values: []string{"first"}},
				model.Attribute{Name: "uid", Values: []string{"second"}},
			),
			wantUser:  "first",
			wantFound: true,
		},
		{
			name: "attribute names are case sensitive",
			record: record(
				model.Attribute{Name: "UID", Values: []string{"jdoe"}},
				model.Attribute{Name: "Gecos", Values: []string{"Jane Doe"}},
			),
			wantFound: false,
		},
		{
			name: "unrelated attributes are skipped",
			record: record(
				model.Attribute{Name: "mail", Values: []string{"jdoe@example.com"}},
				model.Attribute{Name: "uid", Values: []string{"jdoe"}},
			),
			wantUser:  "jdoe",
			wantFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hint, found := Resolve(tt.record)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantUser, hint.Username)
			assert.Equal(t, tt.wantDisplay, hint.DisplayName)
		})
	}
}
