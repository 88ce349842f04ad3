package credential

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaintextVerify(t *testing.T) {
	v := NewPlaintext()

	tests := []struct {
		name     string
		stored   string
		provided string
		wantErr  error
	}{
		{name: "matching passwords", stored: "hunter2", provided: "hunter2", wantErr: nil},
		{name: "wrong password", stored: "hunter2", provided: "hunter3", wantErr: ErrMismatch},
		{name: "empty stored never matches", stored: "", provided: "", wantErr: ErrMismatch},
		{name: "empty provided against set password", stored: "hunter2", provided: "", wantErr: ErrMismatch},
		{name: "case sensitive", stored: "Hunter2", provided: "hunter2", wantErr: ErrMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Verify(tt.stored, tt.provided)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBcryptVerify(t *testing.T) {
	v := NewBcrypt()

	hash, err := Hash("hunter2")
	require.NoError(t, err)

	assert.NoError(t, v.Verify(hash, "hunter2"))
	assert.ErrorIs(t, v.Verify(hash, "hunter3"), ErrMismatch)
	assert.ErrorIs(t, v.Verify("", "hunter2"), ErrMismatch)
	assert.ErrorIs(t, v.Verify("not-a-hash", "hunter2"), ErrMismatch)
}
