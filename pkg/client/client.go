package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	pb "uploadd/api/gen"
)

// UploadClient wraps the upload service for callers that do not want to
// deal with the stream protocol directly.
type UploadClient struct {
	client pb.UploadServiceClient
	conn   *grpc.ClientConn
}

func NewUploadClient(serverAddr string) (*UploadClient, error) {
	conn, err := grpc.NewClient(
		serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.WaitForReady(true)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return &UploadClient{
		client: pb.NewUploadServiceClient(conn),
		conn:   conn,
	}, nil
}

func (c *UploadClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// UploadStream holds an open session. The caller sends chunks until the
// server reports completion, then keeps the stream open so the session
// stays coupled to this process.
type UploadStream struct {
	stream    pb.UploadService_UploadClient
	SessionID string
	Limit     int64
}

// Join opens an upload stream and performs the token handshake. A nil
// error means a session exists and chunks may follow.
func (c *UploadClient) Join(ctx context.Context, token string) (*UploadStream, error) {
	stream, err := c.client.Upload(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open upload stream: %w", err)
	}

	if err := stream.Send(&pb.UploadFrame{Token: token}); err != nil {
		return nil, fmt.Errorf("failed to send join frame: %w", err)
	}

	ack, err := stream.Recv()
	if err != nil {
		return nil, fmt.Errorf("join rejected: %w", err)
	}
	if !ack.Ok {
		return nil, fmt.Errorf("join rejected: %s", ack.Reason)
	}

	return &UploadStream{
		stream:    stream,
		SessionID: ack.SessionId,
		Limit:     ack.Limit,
	}, nil
}

// SendChunk delivers one chunk and waits for its ack. It returns the ack
// so callers can watch received/complete; a rejection ack comes back as
// an error.
func (u *UploadStream) SendChunk(payload []byte) (*pb.UploadAck, error) {
	if err := u.stream.Send(&pb.UploadFrame{Payload: payload}); err != nil {
		return nil, fmt.Errorf("failed to send chunk: %w", err)
	}

	ack, err := u.stream.Recv()
	if err != nil {
		return nil, fmt.Errorf("chunk not acknowledged: %w", err)
	}
	if !ack.Ok {
		return ack, fmt.Errorf("chunk rejected: %s", ack.Reason)
	}

	return ack, nil
}

// SendFile streams an entire reader in fixed-size chunks.
func (u *UploadStream) SendFile(r io.Reader, chunkSize int) (int64, error) {
	if chunkSize <= 0 {
		chunkSize = 64 * 1024
	}

	buf := make([]byte, chunkSize)
	var total int64

	for {
		n, err := r.Read(buf)
		if n > 0 {
			ack, sendErr := u.SendChunk(buf[:n])
			if sendErr != nil {
				return total, sendErr
			}
			total = ack.Received
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, fmt.Errorf("failed to read input: %w", err)
		}
	}
}

// Finish half-closes the send side. The session stays alive until it is
// consumed, cancelled or times out; Wait blocks until then.
func (u *UploadStream) Finish() error {
	return u.stream.CloseSend()
}

// Wait blocks until the server ends the stream, i.e. the session reached
// a terminal state.
func (u *UploadStream) Wait() error {
	for {
		if _, err := u.stream.Recv(); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

func (c *UploadClient) Consume(ctx context.Context, sessionID, name, mediaType, clientRef string) (*pb.ConsumeResponse, error) {
	return c.client.Consume(ctx, &pb.ConsumeRequest{
		SessionId: sessionID,
		Name:      name,
		MediaType: mediaType,
		ClientRef: clientRef,
	})
}

func (c *UploadClient) Cancel(ctx context.Context, sessionID string) (*pb.CancelResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	resp, err := c.client.Cancel(ctx, &pb.CancelRequest{SessionId: sessionID})
	if err != nil {
		if s, ok := status.FromError(err); ok {
			if s.Code() == codes.DeadlineExceeded {
				return nil, fmt.Errorf("timeout while cancelling session %s: server may still be processing the request", sessionID)
			}
		}
		return nil, err
	}
	return resp, nil
}

func (c *UploadClient) Status(ctx context.Context, sessionID string) (*pb.StatusResponse, error) {
	return c.client.Status(ctx, &pb.StatusRequest{SessionId: sessionID})
}
