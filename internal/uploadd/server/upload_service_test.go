package server

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "uploadd/api/gen"
	"uploadd/internal/uploadd/admission"
	"uploadd/internal/uploadd/domain"
	"uploadd/internal/uploadd/liveness"
	"uploadd/internal/uploadd/registry"
	"uploadd/internal/uploadd/store"
)

// fakeUploadStream scripts the client side of an Upload call. Frames are
// consumed from a channel so tests can feed them incrementally; acks are
// collected on another channel.
type fakeUploadStream struct {
	grpc.ServerStream
	ctx    context.Context
	frames chan *pb.UploadFrame
	acks   chan *pb.UploadAck
}

func newFakeUploadStream(ctx context.Context) *fakeUploadStream {
	return &fakeUploadStream{
		ctx:    ctx,
		frames: make(chan *pb.UploadFrame, 16),
		acks:   make(chan *pb.UploadAck, 16),
	}
}

func (f *fakeUploadStream) Context() context.Context { return f.ctx }

func (f *fakeUploadStream) Send(ack *pb.UploadAck) error {
	f.acks <- ack
	return nil
}

func (f *fakeUploadStream) Recv() (*pb.UploadFrame, error) {
	frame, ok := <-f.frames
	if !ok {
		return nil, io.EOF
	}
	return frame, nil
}

func (f *fakeUploadStream) send(frame *pb.UploadFrame) { f.frames <- frame }
func (f *fakeUploadStream) halfClose()                 { close(f.frames) }

func (f *fakeUploadStream) nextAck(t *testing.T) *pb.UploadAck {
	t.Helper()
	select {
	case ack := <-f.acks:
		return ack
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for ack")
		return nil
	}
}

type serviceHarness struct {
	svc      *UploadServiceServer
	tokens   *admission.TokenTable
	sessions *registry.Registry
	tracker  *liveness.Tracker
}

func newServiceHarness(t *testing.T, cfg domain.SlotConfig) *serviceHarness {
	t.Helper()

	tokens := admission.NewTokenTable()
	slots := admission.NewCountingSlots(4, cfg)
	tmp, err := store.NewDirStore(t.TempDir())
	require.NoError(t, err)

	sessions := registry.New()
	tracker := liveness.NewTracker()
	admitter := admission.NewAdmitter(tokens, slots, tmp)

	return &serviceHarness{
		svc:      NewUploadServiceServer(admitter, sessions, tracker),
		tokens:   tokens,
		sessions: sessions,
		tracker:  tracker,
	}
}

// runUpload starts the Upload handler in the background and returns a
// channel carrying its final error.
func runUpload(h *serviceHarness, stream *fakeUploadStream) chan error {
	done := make(chan error, 1)
	go func() { done <- h.svc.Upload(stream) }()
	return done
}

func waitUpload(t *testing.T, done chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("upload handler did not return")
		return nil
	}
}

func TestUpload_FullRoundTrip(t *testing.T) {
	cfg := domain.SlotConfig{MaxFileSize: 6, ChunkTimeout: time.Second}
	h := newServiceHarness(t, cfg)
	token := h.tokens.Issue("owner-a")

	stream := newFakeUploadStream(context.Background())
	done := runUpload(h, stream)

	stream.send(&pb.UploadFrame{Token: token})
	join := stream.nextAck(t)
	require.True(t, join.Ok)
	require.NotEmpty(t, join.SessionId)
	assert.Equal(t, int64(6), join.Limit)

	stream.send(&pb.UploadFrame{Payload: []byte("abc")})
	ack := stream.nextAck(t)
	assert.True(t, ack.Ok)
	assert.Equal(t, int64(3), ack.Received)
	assert.False(t, ack.Complete)

	stream.send(&pb.UploadFrame{Payload: []byte("def")})
	ack = stream.nextAck(t)
	assert.True(t, ack.Ok)
	assert.Equal(t, int64(6), ack.Received)
	assert.True(t, ack.Complete)

	stream.halfClose()

	res, err := h.svc.Consume(context.Background(), &pb.ConsumeRequest{
		SessionId: join.SessionId,
		Name:      "blob.bin",
		MediaType: "application/octet-stream",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), res.Size)
	assert.Equal(t, "blob.bin", res.Name)
	assert.NotEmpty(t, res.Path)

	assert.NoError(t, waitUpload(t, done))
}

func TestUpload_InvalidToken(t *testing.T) {
	cfg := domain.SlotConfig{MaxFileSize: 8, ChunkTimeout: time.Second}
	h := newServiceHarness(t, cfg)

	stream := newFakeUploadStream(context.Background())
	done := runUpload(h, stream)

	stream.send(&pb.UploadFrame{Token: "no-such-token"})

	err := waitUpload(t, done)
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestUpload_MissingToken(t *testing.T) {
	cfg := domain.SlotConfig{MaxFileSize: 8, ChunkTimeout: time.Second}
	h := newServiceHarness(t, cfg)

	stream := newFakeUploadStream(context.Background())
	done := runUpload(h, stream)

	stream.send(&pb.UploadFrame{Payload: []byte("not a token")})

	err := waitUpload(t, done)
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestUpload_SizeLimitRejectionIsTerminal(t *testing.T) {
	cfg := domain.SlotConfig{MaxFileSize: 4, ChunkTimeout: time.Second}
	h := newServiceHarness(t, cfg)
	token := h.tokens.Issue("owner-a")

	stream := newFakeUploadStream(context.Background())
	done := runUpload(h, stream)

	stream.send(&pb.UploadFrame{Token: token})
	join := stream.nextAck(t)
	require.True(t, join.Ok)

	stream.send(&pb.UploadFrame{Payload: []byte("abc")})
	require.True(t, stream.nextAck(t).Ok)

	// 3 + 3 > 4: the whole chunk is refused and the session torn down
	stream.send(&pb.UploadFrame{Payload: []byte("def")})
	reject := stream.nextAck(t)
	assert.False(t, reject.Ok)
	assert.Equal(t, int64(4), reject.Limit)
	assert.Equal(t, int64(3), reject.Received)
	assert.NotEmpty(t, reject.Reason)

	assert.NoError(t, waitUpload(t, done))

	// the session is gone for every later caller
	_, err := h.svc.Status(context.Background(), &pb.StatusRequest{SessionId: join.SessionId})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestUpload_ConsumeBeforeCompleteFails(t *testing.T) {
	cfg := domain.SlotConfig{MaxFileSize: 8, ChunkTimeout: time.Second}
	h := newServiceHarness(t, cfg)
	token := h.tokens.Issue("owner-a")

	stream := newFakeUploadStream(context.Background())
	done := runUpload(h, stream)

	stream.send(&pb.UploadFrame{Token: token})
	join := stream.nextAck(t)

	stream.send(&pb.UploadFrame{Payload: []byte("abc")})
	stream.nextAck(t)

	_, err := h.svc.Consume(context.Background(), &pb.ConsumeRequest{SessionId: join.SessionId})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	// the refused consume must not disturb the session
	st, err := h.svc.Status(context.Background(), &pb.StatusRequest{SessionId: join.SessionId})
	require.NoError(t, err)
	assert.Equal(t, int64(3), st.Uploaded)
	assert.False(t, st.Complete)

	_, err = h.svc.Cancel(context.Background(), &pb.CancelRequest{SessionId: join.SessionId})
	require.NoError(t, err)
	stream.halfClose()
	assert.NoError(t, waitUpload(t, done))
}

func TestCancel_UnknownSessionAcknowledged(t *testing.T) {
	cfg := domain.SlotConfig{MaxFileSize: 8, ChunkTimeout: time.Second}
	h := newServiceHarness(t, cfg)

	res, err := h.svc.Cancel(context.Background(), &pb.CancelRequest{SessionId: "never-existed"})
	require.NoError(t, err)
	assert.True(t, res.Ok)
}

func TestStatus_ReportsProgress(t *testing.T) {
	cfg := domain.SlotConfig{MaxFileSize: 10, ChunkTimeout: time.Second}
	h := newServiceHarness(t, cfg)
	token := h.tokens.Issue("owner-b")

	stream := newFakeUploadStream(context.Background())
	done := runUpload(h, stream)

	stream.send(&pb.UploadFrame{Token: token})
	join := stream.nextAck(t)

	stream.send(&pb.UploadFrame{Payload: []byte("abcde")})
	stream.nextAck(t)

	st, err := h.svc.Status(context.Background(), &pb.StatusRequest{SessionId: join.SessionId})
	require.NoError(t, err)
	assert.Equal(t, join.SessionId, st.SessionId)
	assert.Equal(t, int64(5), st.Uploaded)
	assert.Equal(t, int64(10), st.Limit)
	assert.Equal(t, "owner-b", st.Owner)
	assert.False(t, st.Complete)

	_, err = h.svc.Cancel(context.Background(), &pb.CancelRequest{SessionId: join.SessionId})
	require.NoError(t, err)
	stream.halfClose()
	assert.NoError(t, waitUpload(t, done))
}

func TestUpload_ExpiredSessionNeverLeftRegistered(t *testing.T) {
	// a chunk timeout this short can fire before the handler gets past
	// registration; the session must still end up removed, never parked
	// in the registry already closed
	cfg := domain.SlotConfig{MaxFileSize: 8, ChunkTimeout: time.Nanosecond}
	h := newServiceHarness(t, cfg)
	token := h.tokens.Issue("owner-a")

	for i := 0; i < 200; i++ {
		stream := newFakeUploadStream(context.Background())
		done := runUpload(h, stream)

		stream.send(&pb.UploadFrame{Token: token})
		join := stream.nextAck(t)
		require.True(t, join.Ok)

		stream.halfClose()
		require.NoError(t, waitUpload(t, done))

		if sess, err := h.sessions.Get(join.SessionId); err == nil {
			select {
			case <-sess.Closed():
				t.Fatalf("closed session %s still registered", join.SessionId)
			default:
				t.Fatalf("session %s outlived its upload stream", join.SessionId)
			}
		}
	}

	assert.Empty(t, h.sessions.List())
}

func TestUpload_OwnerConnectionLossTerminatesSession(t *testing.T) {
	cfg := domain.SlotConfig{MaxFileSize: 8, ChunkTimeout: 5 * time.Second}
	h := newServiceHarness(t, cfg)
	token := h.tokens.Issue("owner-c")

	ctx, cancel := context.WithCancel(context.Background())
	stream := newFakeUploadStream(ctx)
	done := runUpload(h, stream)

	stream.send(&pb.UploadFrame{Token: token})
	join := stream.nextAck(t)

	stream.send(&pb.UploadFrame{Payload: []byte("ab")})
	stream.nextAck(t)

	termCh, cancelWatch := h.tracker.Watch("owner-c")
	defer cancelWatch()

	// owner walks away: half-close then drop the connection
	stream.halfClose()
	cancel()

	err := waitUpload(t, done)
	require.Error(t, err)

	// a dropped connection is an abnormal termination, not a graceful close
	select {
	case term := <-termCh:
		assert.ErrorIs(t, term.Err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("owner termination not delivered")
	}

	// the tracker notification tears the session down
	sess, err := h.sessions.Get(join.SessionId)
	if err == nil {
		select {
		case <-sess.Closed():
		case <-time.After(2 * time.Second):
			t.Fatal("session did not close after owner loss")
		}
	}

	_, err = h.svc.Status(context.Background(), &pb.StatusRequest{SessionId: join.SessionId})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestUpload_SecondSessionSameOwner(t *testing.T) {
	cfg := domain.SlotConfig{MaxFileSize: 4, ChunkTimeout: time.Second}
	h := newServiceHarness(t, cfg)
	tokenA := h.tokens.Issue("owner-d")
	tokenB := h.tokens.Issue("owner-d")

	streamA := newFakeUploadStream(context.Background())
	doneA := runUpload(h, streamA)
	streamA.send(&pb.UploadFrame{Token: tokenA})
	joinA := streamA.nextAck(t)

	streamB := newFakeUploadStream(context.Background())
	doneB := runUpload(h, streamB)
	streamB.send(&pb.UploadFrame{Token: tokenB})
	joinB := streamB.nextAck(t)

	require.NotEqual(t, joinA.SessionId, joinB.SessionId)

	for _, id := range []string{joinA.SessionId, joinB.SessionId} {
		_, err := h.svc.Cancel(context.Background(), &pb.CancelRequest{SessionId: id})
		require.NoError(t, err)
	}

	streamA.halfClose()
	streamB.halfClose()
	assert.NoError(t, waitUpload(t, doneA))
	assert.NoError(t, waitUpload(t, doneB))
}
