package docid

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParse(t *testing.T) {
	known := primitive.NewObjectID()

	tests := []struct {
		name    string
		in      string
		want    primitive.ObjectID
		wantErr bool
	}{
		{name: "valid hex", in: known.Hex(), want: known},
		{name: "surrounding space", in: "  " + known.Hex() + " ", want: known},
		{name: "too short", in: "abc", wantErr: true},
		{name: "not hex", in: "zzzzzzzzzzzzzzzzzzzzzzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalid) {
					t.Fatalf("expected ErrInvalid, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got.Hex(), tt.want.Hex())
			}
		})
	}
}

func TestParse_EmptyGeneratesFreshID(t *testing.T) {
	a, err := Parse("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _ := Parse("")
	if a.IsZero() || b.IsZero() {
		t.Fatal("expected non-zero ids")
	}
	if a == b {
		t.Error("expected distinct ids for each empty input")
	}
}

func TestKey(t *testing.T) {
	if got := Key(""); got != nil {
		t.Errorf("empty key: got %#v, want nil", got)
	}
	if got := Key("u@example.com"); got != "u@example.com" {
		t.Errorf("got %#v", got)
	}
}
