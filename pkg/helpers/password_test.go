package helpers

import "testing"

func TestHashPasswordSaltsEveryCall(t *testing.T) {
	first, err := HashPassword("p1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	second, err := HashPassword("p1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if first == second {
		t.Fatal("identical digests for two hash calls; salt missing")
	}
	if first == "p1" || second == "p1" {
		t.Fatal("plaintext returned as digest")
	}
}

func TestCompareHashAndPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CompareHashAndPassword(hash, "correct horse") {
		t.Fatal("matching password rejected")
	}
	if CompareHashAndPassword(hash, "battery staple") {
		t.Fatal("wrong password accepted")
	}
	if CompareHashAndPassword("not a bcrypt digest", "correct horse") {
		t.Fatal("garbage digest accepted")
	}
}
