package storage

import (
	"errors"
	"testing"

	"github.com/seyi-ajadi/invoiceflow/internal/common"
)

func newTestStore(t *testing.T) *MinioStore {
	t.Helper()
	s, err := NewMinioStore(common.StorageConfig{
		Endpoint:  "localhost:9000",
		AccessKey: "test",
		SecretKey: "test",
		Bucket:    "invoices",
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestPublicURLRoundTrip(t *testing.T) {
	s := newTestStore(t)

	url := s.PublicURL("abc-123.pdf")
	if url != "http://localhost:9000/invoices/abc-123.pdf" {
		t.Errorf("url = %s", url)
	}
	key, err := s.keyFromURL(url)
	if err != nil {
		t.Fatal(err)
	}
	if key != "abc-123.pdf" {
		t.Errorf("key = %s", key)
	}
}

func TestKeyFromForeignURLRejected(t *testing.T) {
	s := newTestStore(t)

	cases := []string{
		"http://evil.example/invoices/a.pdf",
		"http://localhost:9000/other-bucket/a.pdf",
		"http://localhost:9000/invoices/",
		"://not a url",
	}
	for _, u := range cases {
		if _, err := s.keyFromURL(u); !errors.Is(err, common.ErrInvalidInput) {
			t.Errorf("keyFromURL(%q) = %v, want ErrInvalidInput", u, err)
		}
	}
}
