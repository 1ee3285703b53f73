package mappers

import (
	pb "uploadd/api/gen"
	"uploadd/internal/uploadd/domain"
)

// SnapshotToStatusResponse converts a domain Snapshot to a StatusRes
func SnapshotToStatusResponse(snap domain.Snapshot) *pb.StatusResponse {
	return &pb.StatusResponse{
		SessionId: snap.ID,
		Uploaded:  snap.Uploaded,
		Limit:     snap.MaxSize,
		Complete:  snap.Done,
		Owner:     string(snap.Owner),
	}
}

// ConsumeRequestToEntry converts a ConsumeRequest to a domain Entry
func ConsumeRequestToEntry(req *pb.ConsumeRequest) domain.Entry {
	return domain.Entry{
		Name:      req.Name,
		MediaType: req.MediaType,
		ClientRef: req.ClientRef,
	}
}

// FileInfoToConsumeResponse converts a handed-off file to a ConsumeRes
func FileInfoToConsumeResponse(info domain.FileInfo, entry domain.Entry) *pb.ConsumeResponse {
	return &pb.ConsumeResponse{
		Path:      info.Path,
		Size:      info.Size,
		Name:      entry.Name,
		MediaType: entry.MediaType,
	}
}
