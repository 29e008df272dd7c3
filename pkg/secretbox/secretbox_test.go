package secretbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBox_EncryptDecrypt(t *testing.T) {
	box, err := New("secret-key")
	require.NoError(t, err)

	encrypted, err := box.Encrypt("demo_google_ads_key_12345")
	require.NoError(t, err)
	assert.NotContains(t, encrypted, "demo_google_ads_key_12345")

	decrypted, err := box.Decrypt(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "demo_google_ads_key_12345", decrypted)

	other, err := box.Encrypt("demo_google_ads_key_12345")
	require.NoError(t, err)
	assert.NotEqual(t, encrypted, other, "nonce deve ser aleatório")
}

func TestBox_DecryptWithWrongKey(t *testing.T) {
	box, _ := New("key-a")
	other, _ := New("key-b")

	encrypted, err := box.Encrypt("value")
	require.NoError(t, err)

	_, err = other.Decrypt(encrypted)
	assert.ErrorIs(t, err, ErrInvalidCipher)

	_, err = box.Decrypt("not base64 !!")
	assert.ErrorIs(t, err, ErrInvalidCipher)
}

func TestBox_EmptyValues(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, ErrEmptyKey)

	box, _ := New("k")
	encrypted, err := box.Encrypt("")
	require.NoError(t, err)
	assert.Empty(t, encrypted)
}

func TestMask(t *testing.T) {
	assert.Equal(t, "****2345", Mask("demo_key_12345"))
	assert.Equal(t, "****", Mask("abc"))
}
