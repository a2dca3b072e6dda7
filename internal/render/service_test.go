package render

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/uid0/openmakersuite/internal/cards"
	imagepkg "github.com/uid0/openmakersuite/internal/image"
	"github.com/uid0/openmakersuite/internal/inventory"
	"github.com/uid0/openmakersuite/internal/storage"
)

type fixturePhotos struct {
	fail bool
}

func (f fixturePhotos) Load(ref string) (*cards.Photo, error) {
	if f.fail {
		return nil, errors.New("photo missing")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 6))); err != nil {
		return nil, err
	}
	return &cards.Photo{PNG: buf.Bytes(), Width: 8, Height: 6}, nil
}

func testService(t *testing.T, photos PhotoLoader) *Service {
	t.Helper()
	store := storage.NewBlobStore(t.TempDir(), "/media")
	return NewService(imagepkg.NewQRProvider(), photos, store, "http://localhost:3000", cards.Avery5388())
}

func testItem() inventory.Item {
	return inventory.Item{
		ID:              uuid.MustParse("a81bc81b-dead-4e5d-abff-90865d1e13b1"),
		Name:            "Laser Cutter Lens",
		Description:     "High quality replacement lens for the makerspace laser cutter.",
		SKU:             "LENS-01",
		CurrentStock:    2,
		MinimumStock:    3,
		ReorderQuantity: 5,
		AverageLeadTime: 1,
		ImagePath:       "lens.png",
		Category:        &inventory.Category{Name: "Optics", Color: "#10b981"},
	}
}

func TestBuildContentStatsAndPayload(t *testing.T) {
	svc := testService(t, fixturePhotos{})
	content := svc.BuildContent(testItem())

	wantStats := []string{"Target: 8 units", "Reorder: 5 units", "Lead: 1 day"}
	if len(content.StatLines) != len(wantStats) {
		t.Fatalf("stat lines = %v, want %v", content.StatLines, wantStats)
	}
	for i, want := range wantStats {
		if content.StatLines[i] != want {
			t.Errorf("stat %d = %q, want %q", i, content.StatLines[i], want)
		}
	}
	if content.CodePayload != "http://localhost:3000/scan/a81bc81b-dead-4e5d-abff-90865d1e13b1" {
		t.Errorf("code payload = %q", content.CodePayload)
	}
	if content.CategoryLabel != "Optics" || content.CategoryColor != "#10b981" {
		t.Errorf("category not resolved: %q %q", content.CategoryLabel, content.CategoryColor)
	}
	if content.Photo == nil {
		t.Error("photo should resolve")
	}
}

func TestBuildContentDegradesOnPhotoFailure(t *testing.T) {
	svc := testService(t, fixturePhotos{fail: true})
	content := svc.BuildContent(testItem())
	if content.Photo != nil {
		t.Fatal("failed photo lookup should leave the photo zone empty")
	}
}

func TestBuildContentSkipsLeadTimeWhenUnknown(t *testing.T) {
	svc := testService(t, fixturePhotos{})
	item := testItem()
	item.AverageLeadTime = 0

	content := svc.BuildContent(item)
	for _, line := range content.StatLines {
		if strings.HasPrefix(line, "Lead:") {
			t.Fatalf("unexpected lead line %q", line)
		}
	}
}

func TestRenderPreviewReturnsPDFBytes(t *testing.T) {
	svc := testService(t, fixturePhotos{})

	out, err := svc.RenderPreview(testItem(), cards.VariantDetailed)
	if err != nil {
		t.Fatalf("RenderPreview failed: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("preview is not a PDF document")
	}
	if len(out) < 200 {
		t.Fatalf("suspiciously small preview: %d bytes", len(out))
	}
}

func TestRenderDocumentRejectsEmptyItems(t *testing.T) {
	svc := testService(t, fixturePhotos{})
	if _, err := svc.RenderDocument(cards.Avery5388(), nil, cards.VariantDetailed); !errors.Is(err, cards.ErrNoItems) {
		t.Fatalf("expected ErrNoItems, got %v", err)
	}
}

func TestRenderBatchToStoragePersists(t *testing.T) {
	svc := testService(t, fixturePhotos{})

	saved, err := svc.RenderBatchToStorage([]inventory.Item{testItem()}, "test cards", cards.VariantDetailed)
	if err != nil {
		t.Fatalf("batch render failed: %v", err)
	}
	if !strings.HasSuffix(saved.Path, "test_cards.pdf") {
		t.Errorf("stored path = %q", saved.Path)
	}
	data, err := os.ReadFile(saved.AbsolutePath)
	if err != nil {
		t.Fatalf("reading stored pdf: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("stored file is not a PDF")
	}
}

func TestRenderBatchBlankSuffix(t *testing.T) {
	svc := testService(t, fixturePhotos{})

	saved, err := svc.RenderBatchToStorage([]inventory.Item{testItem()}, "labels", cards.VariantBlank)
	if err != nil {
		t.Fatalf("batch render failed: %v", err)
	}
	if !strings.HasSuffix(saved.Path, "labels_blank.pdf") {
		t.Errorf("blank batch path = %q, want _blank suffix", saved.Path)
	}
}

func TestBuildPreviewPayload(t *testing.T) {
	svc := testService(t, fixturePhotos{})

	payload, err := svc.BuildPreviewPayload(testItem(), cards.VariantBlank)
	if err != nil {
		t.Fatalf("payload build failed: %v", err)
	}
	if payload.Filename != "LENS-01_blank_preview.pdf" {
		t.Errorf("filename = %q", payload.Filename)
	}
	if payload.CardType != "blank" {
		t.Errorf("card type = %q", payload.CardType)
	}
	if payload.ContentType != "application/pdf" {
		t.Errorf("content type = %q", payload.ContentType)
	}
	if payload.Preview == "" {
		t.Error("preview body empty")
	}
}
