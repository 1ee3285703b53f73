package mappers

import (
	"testing"

	pb "uploadd/api/gen"
	"uploadd/internal/uploadd/domain"
)

func TestSnapshotToStatusResponse(t *testing.T) {
	snap := domain.Snapshot{
		ID:       "sess-1",
		Owner:    "owner-a",
		Uploaded: 4096,
		MaxSize:  1 << 20,
		Done:     true,
	}

	res := SnapshotToStatusResponse(snap)

	if res.SessionId != snap.ID {
		t.Errorf("Expected session id %v, got %v", snap.ID, res.SessionId)
	}
	if res.Uploaded != snap.Uploaded {
		t.Errorf("Expected uploaded %v, got %v", snap.Uploaded, res.Uploaded)
	}
	if res.Limit != snap.MaxSize {
		t.Errorf("Expected limit %v, got %v", snap.MaxSize, res.Limit)
	}
	if !res.Complete {
		t.Error("Expected complete to be true")
	}
	if res.Owner != string(snap.Owner) {
		t.Errorf("Expected owner %v, got %v", snap.Owner, res.Owner)
	}
}

func TestConsumeRequestToEntry(t *testing.T) {
	req := &pb.ConsumeRequest{
		SessionId: "sess-1",
		Name:      "report.pdf",
		MediaType: "application/pdf",
		ClientRef: "ref-42",
	}

	entry := ConsumeRequestToEntry(req)

	if entry.Name != req.Name {
		t.Errorf("Expected name %v, got %v", req.Name, entry.Name)
	}
	if entry.MediaType != req.MediaType {
		t.Errorf("Expected media type %v, got %v", req.MediaType, entry.MediaType)
	}
	if entry.ClientRef != req.ClientRef {
		t.Errorf("Expected client ref %v, got %v", req.ClientRef, entry.ClientRef)
	}
}

func TestFileInfoToConsumeResponse(t *testing.T) {
	info := domain.FileInfo{Path: "/var/lib/uploadd/tmp/x.part", Size: 123}
	entry := domain.Entry{Name: "x.bin", MediaType: "application/octet-stream"}

	res := FileInfoToConsumeResponse(info, entry)

	if res.Path != info.Path {
		t.Errorf("Expected path %v, got %v", info.Path, res.Path)
	}
	if res.Size != info.Size {
		t.Errorf("Expected size %v, got %v", info.Size, res.Size)
	}
	if res.Name != entry.Name {
		t.Errorf("Expected name %v, got %v", entry.Name, res.Name)
	}
	if res.MediaType != entry.MediaType {
		t.Errorf("Expected media type %v, got %v", entry.MediaType, res.MediaType)
	}
}
