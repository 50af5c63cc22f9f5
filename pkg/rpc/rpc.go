package rpc

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

const (
	// ReceiptServicePath is the URL prefix the receipt handler mounts under.
	ReceiptServicePath = "/dividir.v1.ReceiptService/"
	// AuthServicePath is the URL prefix the auth handler mounts under.
	AuthServicePath = "/dividir.v1.AuthService/"
)

const (
	ReceiptServiceCreateReceiptProcedure   = ReceiptServicePath + "CreateReceipt"
	ReceiptServiceGetReceiptProcedure      = ReceiptServicePath + "GetReceipt"
	ReceiptServiceListReceiptsProcedure    = ReceiptServicePath + "ListReceipts"
	ReceiptServiceUpdateReceiptProcedure   = ReceiptServicePath + "UpdateReceipt"
	ReceiptServiceDeleteReceiptProcedure   = ReceiptServicePath + "DeleteReceipt"
	ReceiptServiceSplitItemProcedure       = ReceiptServicePath + "SplitItem"
	ReceiptServiceGetDistributionProcedure = ReceiptServicePath + "GetDistribution"

	AuthServiceRegisterProcedure = AuthServicePath + "Register"
	AuthServiceLoginProcedure    = AuthServicePath + "Login"
)

// ReceiptServiceHandler is the server-side contract of the receipt service.
type ReceiptServiceHandler interface {
	CreateReceipt(context.Context, *connect.Request[CreateReceiptRequest]) (*connect.Response[CreateReceiptResponse], error)
	GetReceipt(context.Context, *connect.Request[GetReceiptRequest]) (*connect.Response[GetReceiptResponse], error)
	ListReceipts(context.Context, *connect.Request[ListReceiptsRequest]) (*connect.Response[ListReceiptsResponse], error)
	UpdateReceipt(context.Context, *connect.Request[UpdateReceiptRequest]) (*connect.Response[UpdateReceiptResponse], error)
	DeleteReceipt(context.Context, *connect.Request[DeleteReceiptRequest]) (*connect.Response[DeleteReceiptResponse], error)
	SplitItem(context.Context, *connect.Request[SplitItemRequest]) (*connect.Response[SplitItemResponse], error)
	GetDistribution(context.Context, *connect.Request[GetDistributionRequest]) (*connect.Response[GetDistributionResponse], error)
}

// AuthServiceHandler is the server-side contract of the auth service.
type AuthServiceHandler interface {
	Register(context.Context, *connect.Request[RegisterRequest]) (*connect.Response[AuthResponse], error)
	Login(context.Context, *connect.Request[LoginRequest]) (*connect.Response[AuthResponse], error)
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)
}

// NewReceiptServiceHandler builds an http.Handler for svc. It returns the
// path the handler should be mounted on along with the handler itself, for
// use with http.ServeMux.Handle.
func NewReceiptServiceHandler(svc ReceiptServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(ReceiptServiceCreateReceiptProcedure, connect.NewUnaryHandler(ReceiptServiceCreateReceiptProcedure, svc.CreateReceipt, opts...))
	mux.Handle(ReceiptServiceGetReceiptProcedure, connect.NewUnaryHandler(ReceiptServiceGetReceiptProcedure, svc.GetReceipt, opts...))
	mux.Handle(ReceiptServiceListReceiptsProcedure, connect.NewUnaryHandler(ReceiptServiceListReceiptsProcedure, svc.ListReceipts, opts...))
	mux.Handle(ReceiptServiceUpdateReceiptProcedure, connect.NewUnaryHandler(ReceiptServiceUpdateReceiptProcedure, svc.UpdateReceipt, opts...))
	mux.Handle(ReceiptServiceDeleteReceiptProcedure, connect.NewUnaryHandler(ReceiptServiceDeleteReceiptProcedure, svc.DeleteReceipt, opts...))
	mux.Handle(ReceiptServiceSplitItemProcedure, connect.NewUnaryHandler(ReceiptServiceSplitItemProcedure, svc.SplitItem, opts...))
	mux.Handle(ReceiptServiceGetDistributionProcedure, connect.NewUnaryHandler(ReceiptServiceGetDistributionProcedure, svc.GetDistribution, opts...))
	return ReceiptServicePath, mux
}

// NewAuthServiceHandler builds an http.Handler for svc.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(AuthServiceRegisterProcedure, connect.NewUnaryHandler(AuthServiceRegisterProcedure, svc.Register, opts...))
	mux.Handle(AuthServiceLoginProcedure, connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...))
	return AuthServicePath, mux
}

// ReceiptServiceClient calls the receipt service over the Connect protocol.
type ReceiptServiceClient struct {
	createReceipt   *connect.Client[CreateReceiptRequest, CreateReceiptResponse]
	getReceipt      *connect.Client[GetReceiptRequest, GetReceiptResponse]
	listReceipts    *connect.Client[ListReceiptsRequest, ListReceiptsResponse]
	updateReceipt   *connect.Client[UpdateReceiptRequest, UpdateReceiptResponse]
	deleteReceipt   *connect.Client[DeleteReceiptRequest, DeleteReceiptResponse]
	splitItem       *connect.Client[SplitItemRequest, SplitItemResponse]
	getDistribution *connect.Client[GetDistributionRequest, GetDistributionResponse]
}

// NewReceiptServiceClient builds a client that talks to the receipt service
// at baseURL.
func NewReceiptServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ReceiptServiceClient {
	opts = clientOptions(opts)
	return &ReceiptServiceClient{
		createReceipt:   connect.NewClient[CreateReceiptRequest, CreateReceiptResponse](httpClient, baseURL+ReceiptServiceCreateReceiptProcedure, opts...),
		getReceipt:      connect.NewClient[GetReceiptRequest, GetReceiptResponse](httpClient, baseURL+ReceiptServiceGetReceiptProcedure, opts...),
		listReceipts:    connect.NewClient[ListReceiptsRequest, ListReceiptsResponse](httpClient, baseURL+ReceiptServiceListReceiptsProcedure, opts...),
		updateReceipt:   connect.NewClient[UpdateReceiptRequest, UpdateReceiptResponse](httpClient, baseURL+ReceiptServiceUpdateReceiptProcedure, opts...),
		deleteReceipt:   connect.NewClient[DeleteReceiptRequest, DeleteReceiptResponse](httpClient, baseURL+ReceiptServiceDeleteReceiptProcedure, opts...),
		splitItem:       connect.NewClient[SplitItemRequest, SplitItemResponse](httpClient, baseURL+ReceiptServiceSplitItemProcedure, opts...),
		getDistribution: connect.NewClient[GetDistributionRequest, GetDistributionResponse](httpClient, baseURL+ReceiptServiceGetDistributionProcedure, opts...),
	}
}

func (c *ReceiptServiceClient) CreateReceipt(ctx context.Context, req *connect.Request[CreateReceiptRequest]) (*connect.Response[CreateReceiptResponse], error) {
	return c.createReceipt.CallUnary(ctx, req)
}

func (c *ReceiptServiceClient) GetReceipt(ctx context.Context, req *connect.Request[GetReceiptRequest]) (*connect.Response[GetReceiptResponse], error) {
	return c.getReceipt.CallUnary(ctx, req)
}

func (c *ReceiptServiceClient) ListReceipts(ctx context.Context, req *connect.Request[ListReceiptsRequest]) (*connect.Response[ListReceiptsResponse], error) {
	return c.listReceipts.CallUnary(ctx, req)
}

func (c *ReceiptServiceClient) UpdateReceipt(ctx context.Context, req *connect.Request[UpdateReceiptRequest]) (*connect.Response[UpdateReceiptResponse], error) {
	return c.updateReceipt.CallUnary(ctx, req)
}

func (c *ReceiptServiceClient) DeleteReceipt(ctx context.Context, req *connect.Request[DeleteReceiptRequest]) (*connect.Response[DeleteReceiptResponse], error) {
	return c.deleteReceipt.CallUnary(ctx, req)
}

func (c *ReceiptServiceClient) SplitItem(ctx context.Context, req *connect.Request[SplitItemRequest]) (*connect.Response[SplitItemResponse], error) {
	return c.splitItem.CallUnary(ctx, req)
}

func (c *ReceiptServiceClient) GetDistribution(ctx context.Context, req *connect.Request[GetDistributionRequest]) (*connect.Response[GetDistributionResponse], error) {
	return c.getDistribution.CallUnary(ctx, req)
}

// AuthServiceClient calls the auth service over the Connect protocol.
type AuthServiceClient struct {
	register *connect.Client[RegisterRequest, AuthResponse]
	login    *connect.Client[LoginRequest, AuthResponse]
}

// NewAuthServiceClient builds a client that talks to the auth service at
// baseURL.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AuthServiceClient {
	opts = clientOptions(opts)
	return &AuthServiceClient{
		register: connect.NewClient[RegisterRequest, AuthResponse](httpClient, baseURL+AuthServiceRegisterProcedure, opts...),
		login:    connect.NewClient[LoginRequest, AuthResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
	}
}

func (c *AuthServiceClient) Register(ctx context.Context, req *connect.Request[RegisterRequest]) (*connect.Response[AuthResponse], error) {
	return c.register.CallUnary(ctx, req)
}

func (c *AuthServiceClient) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[AuthResponse], error) {
	return c.login.CallUnary(ctx, req)
}
