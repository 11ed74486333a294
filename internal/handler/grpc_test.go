package handler

import (
	"context"
	"net"
	"testing"

	"github.com/MikhailRaia/shorturl/internal/middleware"
	"github.com/MikhailRaia/shorturl/internal/proto"
	"github.com/MikhailRaia/shorturl/internal/service"
	"github.com/MikhailRaia/shorturl/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func newGRPCClient(t *testing.T) proto.ShortURLServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)

	server := grpc.NewServer(grpc.UnaryInterceptor(middleware.UnaryLogger))
	proto.RegisterShortURLServiceServer(server, NewShortURLGRPCServer(service.NewURLService(memory.NewStorage())))

	go func() {
		_ = server.Serve(lis)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return proto.NewShortURLServiceClient(conn)
}

func TestShortURLGRPCServer(t *testing.T) {
	client := newGRPCClient(t)
	ctx := context.Background()

	first, err := client.Shorten(ctx, wrapperspb.String("https://example.com"))
	require.NoError(t, err)
	assert.Equal(t, uint32(0), first.GetValue())

	second, err := client.Shorten(ctx, wrapperspb.String("http://example.org"))
	require.NoError(t, err)
	assert.Equal(t, uint32(1), second.GetValue())

	_, err = client.Shorten(ctx, wrapperspb.String("not-a-url"))
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	expanded, err := client.Expand(ctx, wrapperspb.UInt32(1))
	require.NoError(t, err)
	assert.Equal(t, "http://example.org", expanded.GetValue())

	_, err = client.Expand(ctx, wrapperspb.UInt32(2))
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))

	stats, err := client.Stats(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), stats.GetValue())
}

func TestUnimplementedShortURLServiceServer(t *testing.T) {
	var srv proto.UnimplementedShortURLServiceServer

	_, err := srv.Stats(context.Background(), &emptypb.Empty{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}
