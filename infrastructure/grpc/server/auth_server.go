package server

import (
	"chatroom/errors"
	pb "chatroom/proto/account"
	"chatroom/services"
	"context"
	"log/slog"
)

// AuthServer exposes the identity authority.
type AuthServer struct {
	pb.UnimplementedAuthenticationServiceServer
	authService services.IAuthService
	log         *slog.Logger
}

func NewAuthServer(log *slog.Logger, authService services.IAuthService) *AuthServer {
	return &AuthServer{authService: authService, log: log}
}

func (s *AuthServer) Authenticate(_ context.Context, req *pb.AuthenticationRequest) (*pb.AuthenticationResponse, error) {
	token, err := s.authService.Authenticate(req.GetUsername(), req.GetPassword())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.AuthenticationResponse{Token: token}, nil
}

func (s *AuthServer) Authorization(_ context.Context, req *pb.AuthorizationRequest) (*pb.AuthorizationResponse, error) {
	authorization, err := s.authService.Authorize(req.GetToken())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.AuthorizationResponse{UserId: authorization.Subject, Roles: authorization.Roles}, nil
}
