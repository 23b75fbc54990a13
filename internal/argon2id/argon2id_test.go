package argon2id

import (
	"errors"
	"strings"
	"testing"
)

var testParams = Params{
	Memory:      16 * 1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

func TestHash_Format(t *testing.T) {
	encoded, err := Hash("Correct-Horse-9", testParams)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$v=19$m=16384,t=1,p=1$") {
		t.Errorf("Hash() = %q", encoded)
	}

	p, salt, key, err := decode(encoded)
	if err != nil {
		t.Fatalf("decode() error = %v", err)
	}
	if p != testParams {
		t.Errorf("decoded params = %+v, want %+v", p, testParams)
	}
	if len(salt) != 16 || len(key) != 32 {
		t.Errorf("salt length = %d, key length = %d", len(salt), len(key))
	}
}

func TestHash_SaltsDiffer(t *testing.T) {
	a, err := Hash("Correct-Horse-9", testParams)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	b, err := Hash("Correct-Horse-9", testParams)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password are identical")
	}
}

func TestVerify(t *testing.T) {
	encoded, err := Hash("Correct-Horse-9", testParams)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "matching password", password: "Correct-Horse-9", want: true},
		{name: "wrong case", password: "correct-horse-9", want: false},
		{name: "empty password", password: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Verify(tt.password, encoded)
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Verify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerify_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		wantErr error
	}{
		{name: "too few sections", encoded: "$argon2id$v=19$abc", wantErr: ErrInvalidHash},
		{name: "other algorithm", encoded: "$argon2i$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA", wantErr: ErrInvalidHash},
		{name: "bcrypt", encoded: "$2a$10$abcdefghijklmnopqrstuu", wantErr: ErrInvalidHash},
		{name: "wrong version", encoded: "$argon2id$v=16$m=65536,t=1,p=4$c2FsdA$aGFzaA", wantErr: ErrIncompatibleVersion},
		{name: "bad params", encoded: "$argon2id$v=19$m=x,t=1,p=4$c2FsdA$aGFzaA", wantErr: ErrInvalidHash},
		{name: "bad salt", encoded: "$argon2id$v=19$m=65536,t=1,p=4$***$aGFzaA", wantErr: ErrInvalidHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Verify("anything", tt.encoded)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Verify() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
