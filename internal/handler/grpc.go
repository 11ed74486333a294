package handler

import (
	"context"
	"errors"

	"github.com/MikhailRaia/shorturl/internal/proto"
	"github.com/MikhailRaia/shorturl/internal/service"
	"github.com/MikhailRaia/shorturl/internal/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type ShortURLGRPCServer struct {
	proto.UnimplementedShortURLServiceServer
	urlService URLService
}

func NewShortURLGRPCServer(urlService URLService) *ShortURLGRPCServer {
	return &ShortURLGRPCServer{
		urlService: urlService,
	}
}

func (s *ShortURLGRPCServer) Shorten(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.UInt32Value, error) {
	entry, err := s.urlService.ShortenURL(ctx, req.GetValue())
	if err != nil {
		if errors.Is(err, service.ErrInvalidURL) {
			return nil, status.Error(codes.InvalidArgument, service.ErrInvalidURL.Error())
		}
		return nil, status.Errorf(codes.Internal, "failed to shorten URL: %v", err)
	}

	return wrapperspb.UInt32(entry.ID), nil
}

func (s *ShortURLGRPCServer) Expand(ctx context.Context, req *wrapperspb.UInt32Value) (*wrapperspb.StringValue, error) {
	originalURL, err := s.urlService.GetOriginalURL(ctx, req.GetValue())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "url not found")
		}
		return nil, status.Errorf(codes.Internal, "failed to expand URL: %v", err)
	}

	return wrapperspb.String(originalURL), nil
}

func (s *ShortURLGRPCServer) Stats(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.UInt64Value, error) {
	return wrapperspb.UInt64(uint64(s.urlService.GetStats(ctx))), nil
}
