package notebook

import "testing"

func TestCheckPasswordPlain(t *testing.T) {
	if !checkPassword("secret", "secret") {
		t.Error("matching plain password rejected")
	}
	if checkPassword("Secret", "secret") || checkPassword("", "secret") {
		t.Error("wrong plain password accepted")
	}
}

func TestCheckPasswordBcrypt(t *testing.T) {
	hashed, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !isBcryptHash(hashed) {
		t.Fatalf("hash %q has no bcrypt prefix", hashed)
	}
	if !checkPassword("secret", hashed) {
		t.Error("matching password rejected")
	}
	if checkPassword("nope", hashed) || checkPassword(hashed, hashed) {
		t.Error("wrong password accepted")
	}
}
