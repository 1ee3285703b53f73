package server

import (
	"context"
	"errors"
	"io"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "uploadd/api/gen"
	"uploadd/internal/uploadd/admission"
	"uploadd/internal/uploadd/domain"
	"uploadd/internal/uploadd/liveness"
	"uploadd/internal/uploadd/mappers"
	"uploadd/internal/uploadd/registry"
	"uploadd/internal/uploadd/session"
	errs "uploadd/pkg/errors"
	"uploadd/pkg/logger"
)

type UploadServiceServer struct {
	pb.UnimplementedUploadServiceServer
	admitter *admission.Admitter
	sessions *registry.Registry
	tracker  *liveness.Tracker
	logger   *logger.Logger
}

func NewUploadServiceServer(admitter *admission.Admitter, sessions *registry.Registry, tracker *liveness.Tracker) *UploadServiceServer {
	return &UploadServiceServer{
		admitter: admitter,
		sessions: sessions,
		tracker:  tracker,
		logger:   logger.WithField("component", "upload-service"),
	}
}

// Upload drives one session end to end. The first frame joins with a
// token; each later frame carries one chunk and is acked individually.
// The stream doubles as the owner's liveness channel: it stays open after
// the client half-closes, and the session outcome (consumed, cancelled,
// timed out) ends it. The stream context going away while the session is
// still live is reported as owner termination.
func (s *UploadServiceServer) Upload(stream pb.UploadService_UploadServer) error {
	log := s.logger.WithField("operation", "Upload")

	first, err := stream.Recv()
	if err != nil {
		log.Warn("stream ended before join frame", "error", err)
		return status.Errorf(codes.InvalidArgument, "missing join frame: %v", err)
	}

	if first.Token == "" {
		log.Warn("join frame carried no token")
		return status.Errorf(codes.InvalidArgument, "join frame must carry a token")
	}

	grant, err := s.admitter.Admit(first.Token)
	if err != nil {
		return mapAdmissionError(err)
	}

	release := s.tracker.Up(grant.Owner)
	defer release()

	sess := session.New(grant.Ref, grant.Owner, grant.Config, grant.Path, grant.File, s.tracker,
		func(reason domain.CloseReason) {
			s.sessions.Remove(grant.Ref)
			s.admitter.Release(grant)
		})

	// register before the actor runs so the close hook always finds the
	// entry it has to remove
	s.sessions.Add(sess)
	sess.Start()

	log = log.WithFields("sessionId", sess.ID(), "owner", string(grant.Owner))
	log.Info("session joined", "maxFileSize", grant.Config.MaxFileSize)

	if err := stream.Send(&pb.UploadAck{
		SessionId: sess.ID(),
		Ok:        true,
		Limit:     grant.Config.MaxFileSize,
	}); err != nil {
		log.Error("failed to send join ack", "error", err)
		s.tracker.Down(grant.Owner, err)
		return err
	}

	ctx := stream.Context()
	var received int64

	for {
		frame, recvErr := stream.Recv()
		if recvErr == io.EOF {
			break
		}
		if recvErr != nil {
			log.Warn("upload stream broken", "error", recvErr)
			s.tracker.Down(grant.Owner, recvErr)
			return recvErr
		}

		chunkErr := sess.Chunk(ctx, frame.Payload)

		var sizeErr *errs.SizeLimitError
		switch {
		case chunkErr == nil:
			received += int64(len(frame.Payload))
			ack := &pb.UploadAck{
				SessionId: sess.ID(),
				Ok:        true,
				Limit:     grant.Config.MaxFileSize,
				Received:  received,
				Complete:  received == grant.Config.MaxFileSize,
			}
			if err := stream.Send(ack); err != nil {
				log.Error("failed to send chunk ack", "error", err)
				s.tracker.Down(grant.Owner, err)
				return err
			}

		case errors.As(chunkErr, &sizeErr):
			// terminal rejection: session is already gone, partial file abandoned
			log.Warn("chunk rejected, size limit exceeded", "limit", sizeErr.Limit, "received", received)
			if err := stream.Send(&pb.UploadAck{
				SessionId: sess.ID(),
				Reason:    chunkErr.Error(),
				Limit:     sizeErr.Limit,
				Received:  received,
			}); err != nil {
				s.tracker.Down(grant.Owner, err)
				return err
			}
			return nil

		case errors.Is(chunkErr, errs.ErrCompleted):
			// extra frame after the upload finished; refuse it, keep the stream
			if err := stream.Send(&pb.UploadAck{
				SessionId: sess.ID(),
				Reason:    chunkErr.Error(),
				Limit:     grant.Config.MaxFileSize,
				Received:  received,
				Complete:  true,
			}); err != nil {
				s.tracker.Down(grant.Owner, err)
				return err
			}

		case errors.Is(chunkErr, errs.ErrSessionClosed):
			log.Debug("chunk arrived after session close-out")
			return status.Errorf(codes.Aborted, "session closed")

		default:
			log.Error("chunk failed", "error", chunkErr)
			s.tracker.Down(grant.Owner, chunkErr)
			return status.Errorf(codes.Internal, "chunk failed: %v", chunkErr)
		}
	}

	// client half-closed: all frames delivered. Hold the stream open as the
	// liveness channel until the session resolves or the owner disappears.
	select {
	case <-sess.Closed():
		log.Debug("session resolved, ending upload stream", "received", received)
		return nil

	case <-ctx.Done():
		log.Warn("owner connection lost while session live", "error", ctx.Err())
		s.tracker.Down(grant.Owner, ctx.Err())
		return ctx.Err()
	}
}

func (s *UploadServiceServer) Consume(ctx context.Context, req *pb.ConsumeRequest) (*pb.ConsumeResponse, error) {
	log := s.logger.WithFields("operation", "Consume", "sessionId", req.SessionId)

	log.Debug("consume request received", "name", req.Name, "clientRef", req.ClientRef)

	sess, err := s.sessions.Get(req.SessionId)
	if err != nil {
		log.Warn("session not found")
		return nil, status.Errorf(codes.NotFound, "session not found: %v", req.SessionId)
	}

	entry := mappers.ConsumeRequestToEntry(req)

	value, err := sess.Consume(ctx, entry, func(info domain.FileInfo, entry domain.Entry) (interface{}, error) {
		return mappers.FileInfoToConsumeResponse(info, entry), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInProgress):
			log.Debug("consume refused, upload still in progress")
			return nil, status.Errorf(codes.FailedPrecondition, "upload still in progress")
		case errors.Is(err, errs.ErrSessionClosed):
			log.Warn("consume lost, session already closed")
			return nil, status.Errorf(codes.NotFound, "session not found: %v", req.SessionId)
		default:
			log.Error("consume failed", "error", err)
			return nil, status.Errorf(codes.Internal, "consume failed: %v", err)
		}
	}

	log.Info("file handed off", "name", entry.Name)
	return value.(*pb.ConsumeResponse), nil
}

func (s *UploadServiceServer) Cancel(ctx context.Context, req *pb.CancelRequest) (*pb.CancelResponse, error) {
	log := s.logger.WithFields("operation", "Cancel", "sessionId", req.SessionId)

	sess, err := s.sessions.Get(req.SessionId)
	if err != nil {
		// a session that is already gone is as cancelled as it gets
		log.Debug("cancel for unknown session, acknowledging")
		return &pb.CancelResponse{Ok: true}, nil
	}

	if err := sess.Cancel(ctx); err != nil {
		log.Error("cancel failed", "error", err)
		return nil, status.Errorf(codes.Internal, "cancel failed: %v", err)
	}

	log.Info("session cancelled")
	return &pb.CancelResponse{Ok: true}, nil
}

func (s *UploadServiceServer) Status(ctx context.Context, req *pb.StatusRequest) (*pb.StatusResponse, error) {
	log := s.logger.WithFields("operation", "Status", "sessionId", req.SessionId)

	sess, err := s.sessions.Get(req.SessionId)
	if err != nil {
		log.Debug("session not found")
		return nil, status.Errorf(codes.NotFound, "session not found: %v", req.SessionId)
	}

	snap, err := sess.Snapshot(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrSessionClosed) {
			return nil, status.Errorf(codes.NotFound, "session not found: %v", req.SessionId)
		}
		return nil, status.Errorf(codes.Internal, "status failed: %v", err)
	}

	return mappers.SnapshotToStatusResponse(snap), nil
}

func mapAdmissionError(err error) error {
	switch {
	case errors.Is(err, errs.ErrInvalidToken):
		return status.Errorf(codes.Unauthenticated, "invalid join token")
	case errors.Is(err, errs.ErrLimitExceeded):
		return status.Errorf(codes.ResourceExhausted, "upload slot limit exceeded")
	case errors.Is(err, errs.ErrStorageUnavailable):
		return status.Errorf(codes.Unavailable, "temporary storage unavailable")
	default:
		return status.Errorf(codes.Internal, "join failed: %v", err)
	}
}
