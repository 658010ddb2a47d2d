// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: invoices/v1/invoices.proto

package invoicesv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ProfilesService_CreateProfile_FullMethodName = "/invoices.v1.ProfilesService/CreateProfile"
	ProfilesService_GetProfile_FullMethodName    = "/invoices.v1.ProfilesService/GetProfile"
)

// ProfilesServiceClient is the client API for ProfilesService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ProfilesServiceClient interface {
	CreateProfile(ctx context.Context, in *CreateProfileRequest, opts ...grpc.CallOption) (*CreateProfileResponse, error)
	GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*GetProfileResponse, error)
}

type profilesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProfilesServiceClient(cc grpc.ClientConnInterface) ProfilesServiceClient {
	return &profilesServiceClient{cc}
}

func (c *profilesServiceClient) CreateProfile(ctx context.Context, in *CreateProfileRequest, opts ...grpc.CallOption) (*CreateProfileResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateProfileResponse)
	err := c.cc.Invoke(ctx, ProfilesService_CreateProfile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *profilesServiceClient) GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*GetProfileResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetProfileResponse)
	err := c.cc.Invoke(ctx, ProfilesService_GetProfile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ProfilesServiceServer is the server API for ProfilesService service.
// All implementations must embed UnimplementedProfilesServiceServer
// for forward compatibility.
type ProfilesServiceServer interface {
	CreateProfile(context.Context, *CreateProfileRequest) (*CreateProfileResponse, error)
	GetProfile(context.Context, *GetProfileRequest) (*GetProfileResponse, error)
	mustEmbedUnimplementedProfilesServiceServer()
}

// UnimplementedProfilesServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedProfilesServiceServer struct{}

func (UnimplementedProfilesServiceServer) CreateProfile(context.Context, *CreateProfileRequest) (*CreateProfileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateProfile not implemented")
}
func (UnimplementedProfilesServiceServer) GetProfile(context.Context, *GetProfileRequest) (*GetProfileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetProfile not implemented")
}
func (UnimplementedProfilesServiceServer) mustEmbedUnimplementedProfilesServiceServer() {}
func (UnimplementedProfilesServiceServer) testEmbeddedByValue()                         {}

// UnsafeProfilesServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ProfilesServiceServer will
// result in compilation errors.
type UnsafeProfilesServiceServer interface {
	mustEmbedUnimplementedProfilesServiceServer()
}

func RegisterProfilesServiceServer(s grpc.ServiceRegistrar, srv ProfilesServiceServer) {
	// If the following call pancis, it indicates UnimplementedProfilesServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ProfilesService_ServiceDesc, srv)
}

func _ProfilesService_CreateProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProfilesServiceServer).CreateProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProfilesService_CreateProfile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProfilesServiceServer).CreateProfile(ctx, req.(*CreateProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProfilesService_GetProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProfilesServiceServer).GetProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProfilesService_GetProfile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProfilesServiceServer).GetProfile(ctx, req.(*GetProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ProfilesService_ServiceDesc is the grpc.ServiceDesc for ProfilesService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ProfilesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "invoices.v1.ProfilesService",
	HandlerType: (*ProfilesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateProfile",
			Handler:    _ProfilesService_CreateProfile_Handler,
		},
		{
			MethodName: "GetProfile",
			Handler:    _ProfilesService_GetProfile_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "invoices/v1/invoices.proto",
}

const (
	MappingsService_CreateFieldMapping_FullMethodName = "/invoices.v1.MappingsService/CreateFieldMapping"
	MappingsService_UpdateFieldMapping_FullMethodName = "/invoices.v1.MappingsService/UpdateFieldMapping"
	MappingsService_DeleteFieldMapping_FullMethodName = "/invoices.v1.MappingsService/DeleteFieldMapping"
	MappingsService_ListFieldMappings_FullMethodName  = "/invoices.v1.MappingsService/ListFieldMappings"
	MappingsService_SuggestMappings_FullMethodName    = "/invoices.v1.MappingsService/SuggestMappings"
)

// MappingsServiceClient is the client API for MappingsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type MappingsServiceClient interface {
	CreateFieldMapping(ctx context.Context, in *CreateFieldMappingRequest, opts ...grpc.CallOption) (*CreateFieldMappingResponse, error)
	UpdateFieldMapping(ctx context.Context, in *UpdateFieldMappingRequest, opts ...grpc.CallOption) (*UpdateFieldMappingResponse, error)
	DeleteFieldMapping(ctx context.Context, in *DeleteFieldMappingRequest, opts ...grpc.CallOption) (*DeleteFieldMappingResponse, error)
	ListFieldMappings(ctx context.Context, in *ListFieldMappingsRequest, opts ...grpc.CallOption) (*ListFieldMappingsResponse, error)
	SuggestMappings(ctx context.Context, in *SuggestMappingsRequest, opts ...grpc.CallOption) (*SuggestMappingsResponse, error)
}

type mappingsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMappingsServiceClient(cc grpc.ClientConnInterface) MappingsServiceClient {
	return &mappingsServiceClient{cc}
}

func (c *mappingsServiceClient) CreateFieldMapping(ctx context.Context, in *CreateFieldMappingRequest, opts ...grpc.CallOption) (*CreateFieldMappingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateFieldMappingResponse)
	err := c.cc.Invoke(ctx, MappingsService_CreateFieldMapping_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mappingsServiceClient) UpdateFieldMapping(ctx context.Context, in *UpdateFieldMappingRequest, opts ...grpc.CallOption) (*UpdateFieldMappingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateFieldMappingResponse)
	err := c.cc.Invoke(ctx, MappingsService_UpdateFieldMapping_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mappingsServiceClient) DeleteFieldMapping(ctx context.Context, in *DeleteFieldMappingRequest, opts ...grpc.CallOption) (*DeleteFieldMappingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteFieldMappingResponse)
	err := c.cc.Invoke(ctx, MappingsService_DeleteFieldMapping_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mappingsServiceClient) ListFieldMappings(ctx context.Context, in *ListFieldMappingsRequest, opts ...grpc.CallOption) (*ListFieldMappingsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListFieldMappingsResponse)
	err := c.cc.Invoke(ctx, MappingsService_ListFieldMappings_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mappingsServiceClient) SuggestMappings(ctx context.Context, in *SuggestMappingsRequest, opts ...grpc.CallOption) (*SuggestMappingsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SuggestMappingsResponse)
	err := c.cc.Invoke(ctx, MappingsService_SuggestMappings_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MappingsServiceServer is the server API for MappingsService service.
// All implementations must embed UnimplementedMappingsServiceServer
// for forward compatibility.
type MappingsServiceServer interface {
	CreateFieldMapping(context.Context, *CreateFieldMappingRequest) (*CreateFieldMappingResponse, error)
	UpdateFieldMapping(context.Context, *UpdateFieldMappingRequest) (*UpdateFieldMappingResponse, error)
	DeleteFieldMapping(context.Context, *DeleteFieldMappingRequest) (*DeleteFieldMappingResponse, error)
	ListFieldMappings(context.Context, *ListFieldMappingsRequest) (*ListFieldMappingsResponse, error)
	SuggestMappings(context.Context, *SuggestMappingsRequest) (*SuggestMappingsResponse, error)
	mustEmbedUnimplementedMappingsServiceServer()
}

// UnimplementedMappingsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedMappingsServiceServer struct{}

func (UnimplementedMappingsServiceServer) CreateFieldMapping(context.Context, *CreateFieldMappingRequest) (*CreateFieldMappingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateFieldMapping not implemented")
}
func (UnimplementedMappingsServiceServer) UpdateFieldMapping(context.Context, *UpdateFieldMappingRequest) (*UpdateFieldMappingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateFieldMapping not implemented")
}
func (UnimplementedMappingsServiceServer) DeleteFieldMapping(context.Context, *DeleteFieldMappingRequest) (*DeleteFieldMappingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteFieldMapping not implemented")
}
func (UnimplementedMappingsServiceServer) ListFieldMappings(context.Context, *ListFieldMappingsRequest) (*ListFieldMappingsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListFieldMappings not implemented")
}
func (UnimplementedMappingsServiceServer) SuggestMappings(context.Context, *SuggestMappingsRequest) (*SuggestMappingsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SuggestMappings not implemented")
}
func (UnimplementedMappingsServiceServer) mustEmbedUnimplementedMappingsServiceServer() {}
func (UnimplementedMappingsServiceServer) testEmbeddedByValue()                         {}

// UnsafeMappingsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MappingsServiceServer will
// result in compilation errors.
type UnsafeMappingsServiceServer interface {
	mustEmbedUnimplementedMappingsServiceServer()
}

func RegisterMappingsServiceServer(s grpc.ServiceRegistrar, srv MappingsServiceServer) {
	// If the following call pancis, it indicates UnimplementedMappingsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&MappingsService_ServiceDesc, srv)
}

func _MappingsService_CreateFieldMapping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateFieldMappingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MappingsServiceServer).CreateFieldMapping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MappingsService_CreateFieldMapping_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MappingsServiceServer).CreateFieldMapping(ctx, req.(*CreateFieldMappingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MappingsService_UpdateFieldMapping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateFieldMappingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MappingsServiceServer).UpdateFieldMapping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MappingsService_UpdateFieldMapping_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MappingsServiceServer).UpdateFieldMapping(ctx, req.(*UpdateFieldMappingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MappingsService_DeleteFieldMapping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteFieldMappingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MappingsServiceServer).DeleteFieldMapping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MappingsService_DeleteFieldMapping_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MappingsServiceServer).DeleteFieldMapping(ctx, req.(*DeleteFieldMappingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MappingsService_ListFieldMappings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListFieldMappingsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MappingsServiceServer).ListFieldMappings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MappingsService_ListFieldMappings_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MappingsServiceServer).ListFieldMappings(ctx, req.(*ListFieldMappingsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MappingsService_SuggestMappings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SuggestMappingsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MappingsServiceServer).SuggestMappings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MappingsService_SuggestMappings_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MappingsServiceServer).SuggestMappings(ctx, req.(*SuggestMappingsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MappingsService_ServiceDesc is the grpc.ServiceDesc for MappingsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MappingsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "invoices.v1.MappingsService",
	HandlerType: (*MappingsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateFieldMapping",
			Handler:    _MappingsService_CreateFieldMapping_Handler,
		},
		{
			MethodName: "UpdateFieldMapping",
			Handler:    _MappingsService_UpdateFieldMapping_Handler,
		},
		{
			MethodName: "DeleteFieldMapping",
			Handler:    _MappingsService_DeleteFieldMapping_Handler,
		},
		{
			MethodName: "ListFieldMappings",
			Handler:    _MappingsService_ListFieldMappings_Handler,
		},
		{
			MethodName: "SuggestMappings",
			Handler:    _MappingsService_SuggestMappings_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "invoices/v1/invoices.proto",
}

const (
	InvoicesService_IngestBatch_FullMethodName  = "/invoices.v1.InvoicesService/IngestBatch"
	InvoicesService_ListInvoices_FullMethodName = "/invoices.v1.InvoicesService/ListInvoices"
	InvoicesService_GetInvoice_FullMethodName   = "/invoices.v1.InvoicesService/GetInvoice"
)

// InvoicesServiceClient is the client API for InvoicesService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type InvoicesServiceClient interface {
	IngestBatch(ctx context.Context, in *IngestBatchRequest, opts ...grpc.CallOption) (*IngestBatchResponse, error)
	ListInvoices(ctx context.Context, in *ListInvoicesRequest, opts ...grpc.CallOption) (*ListInvoicesResponse, error)
	GetInvoice(ctx context.Context, in *GetInvoiceRequest, opts ...grpc.CallOption) (*GetInvoiceResponse, error)
}

type invoicesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInvoicesServiceClient(cc grpc.ClientConnInterface) InvoicesServiceClient {
	return &invoicesServiceClient{cc}
}

func (c *invoicesServiceClient) IngestBatch(ctx context.Context, in *IngestBatchRequest, opts ...grpc.CallOption) (*IngestBatchResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestBatchResponse)
	err := c.cc.Invoke(ctx, InvoicesService_IngestBatch_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoicesServiceClient) ListInvoices(ctx context.Context, in *ListInvoicesRequest, opts ...grpc.CallOption) (*ListInvoicesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListInvoicesResponse)
	err := c.cc.Invoke(ctx, InvoicesService_ListInvoices_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoicesServiceClient) GetInvoice(ctx context.Context, in *GetInvoiceRequest, opts ...grpc.CallOption) (*GetInvoiceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetInvoiceResponse)
	err := c.cc.Invoke(ctx, InvoicesService_GetInvoice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InvoicesServiceServer is the server API for InvoicesService service.
// All implementations must embed UnimplementedInvoicesServiceServer
// for forward compatibility.
type InvoicesServiceServer interface {
	IngestBatch(context.Context, *IngestBatchRequest) (*IngestBatchResponse, error)
	ListInvoices(context.Context, *ListInvoicesRequest) (*ListInvoicesResponse, error)
	GetInvoice(context.Context, *GetInvoiceRequest) (*GetInvoiceResponse, error)
	mustEmbedUnimplementedInvoicesServiceServer()
}

// UnimplementedInvoicesServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedInvoicesServiceServer struct{}

func (UnimplementedInvoicesServiceServer) IngestBatch(context.Context, *IngestBatchRequest) (*IngestBatchResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IngestBatch not implemented")
}
func (UnimplementedInvoicesServiceServer) ListInvoices(context.Context, *ListInvoicesRequest) (*ListInvoicesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListInvoices not implemented")
}
func (UnimplementedInvoicesServiceServer) GetInvoice(context.Context, *GetInvoiceRequest) (*GetInvoiceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetInvoice not implemented")
}
func (UnimplementedInvoicesServiceServer) mustEmbedUnimplementedInvoicesServiceServer() {}
func (UnimplementedInvoicesServiceServer) testEmbeddedByValue()                         {}

// UnsafeInvoicesServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to InvoicesServiceServer will
// result in compilation errors.
type UnsafeInvoicesServiceServer interface {
	mustEmbedUnimplementedInvoicesServiceServer()
}

func RegisterInvoicesServiceServer(s grpc.ServiceRegistrar, srv InvoicesServiceServer) {
	// If the following call pancis, it indicates UnimplementedInvoicesServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&InvoicesService_ServiceDesc, srv)
}

func _InvoicesService_IngestBatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestBatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicesServiceServer).IngestBatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicesService_IngestBatch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicesServiceServer).IngestBatch(ctx, req.(*IngestBatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoicesService_ListInvoices_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListInvoicesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicesServiceServer).ListInvoices(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicesService_ListInvoices_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicesServiceServer).ListInvoices(ctx, req.(*ListInvoicesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoicesService_GetInvoice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetInvoiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicesServiceServer).GetInvoice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicesService_GetInvoice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicesServiceServer).GetInvoice(ctx, req.(*GetInvoiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// InvoicesService_ServiceDesc is the grpc.ServiceDesc for InvoicesService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var InvoicesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "invoices.v1.InvoicesService",
	HandlerType: (*InvoicesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "IngestBatch",
			Handler:    _InvoicesService_IngestBatch_Handler,
		},
		{
			MethodName: "ListInvoices",
			Handler:    _InvoicesService_ListInvoices_Handler,
		},
		{
			MethodName: "GetInvoice",
			Handler:    _InvoicesService_GetInvoice_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "invoices/v1/invoices.proto",
}

const (
	ExportsService_MergeInvoices_FullMethodName       = "/invoices.v1.ExportsService/MergeInvoices"
	ExportsService_ExportInvoices_FullMethodName      = "/invoices.v1.ExportsService/ExportInvoices"
	ExportsService_ListExportHistory_FullMethodName   = "/invoices.v1.ExportsService/ListExportHistory"
	ExportsService_DeleteExportHistory_FullMethodName = "/invoices.v1.ExportsService/DeleteExportHistory"
)

// ExportsServiceClient is the client API for ExportsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ExportsServiceClient interface {
	MergeInvoices(ctx context.Context, in *MergeInvoicesRequest, opts ...grpc.CallOption) (*MergeInvoicesResponse, error)
	ExportInvoices(ctx context.Context, in *ExportInvoicesRequest, opts ...grpc.CallOption) (*ExportInvoicesResponse, error)
	ListExportHistory(ctx context.Context, in *ListExportHistoryRequest, opts ...grpc.CallOption) (*ListExportHistoryResponse, error)
	DeleteExportHistory(ctx context.Context, in *DeleteExportHistoryRequest, opts ...grpc.CallOption) (*DeleteExportHistoryResponse, error)
}

type exportsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportsServiceClient(cc grpc.ClientConnInterface) ExportsServiceClient {
	return &exportsServiceClient{cc}
}

func (c *exportsServiceClient) MergeInvoices(ctx context.Context, in *MergeInvoicesRequest, opts ...grpc.CallOption) (*MergeInvoicesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MergeInvoicesResponse)
	err := c.cc.Invoke(ctx, ExportsService_MergeInvoices_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exportsServiceClient) ExportInvoices(ctx context.Context, in *ExportInvoicesRequest, opts ...grpc.CallOption) (*ExportInvoicesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportInvoicesResponse)
	err := c.cc.Invoke(ctx, ExportsService_ExportInvoices_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exportsServiceClient) ListExportHistory(ctx context.Context, in *ListExportHistoryRequest, opts ...grpc.CallOption) (*ListExportHistoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListExportHistoryResponse)
	err := c.cc.Invoke(ctx, ExportsService_ListExportHistory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exportsServiceClient) DeleteExportHistory(ctx context.Context, in *DeleteExportHistoryRequest, opts ...grpc.CallOption) (*DeleteExportHistoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteExportHistoryResponse)
	err := c.cc.Invoke(ctx, ExportsService_DeleteExportHistory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportsServiceServer is the server API for ExportsService service.
// All implementations must embed UnimplementedExportsServiceServer
// for forward compatibility.
type ExportsServiceServer interface {
	MergeInvoices(context.Context, *MergeInvoicesRequest) (*MergeInvoicesResponse, error)
	ExportInvoices(context.Context, *ExportInvoicesRequest) (*ExportInvoicesResponse, error)
	ListExportHistory(context.Context, *ListExportHistoryRequest) (*ListExportHistoryResponse, error)
	DeleteExportHistory(context.Context, *DeleteExportHistoryRequest) (*DeleteExportHistoryResponse, error)
	mustEmbedUnimplementedExportsServiceServer()
}

// UnimplementedExportsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportsServiceServer struct{}

func (UnimplementedExportsServiceServer) MergeInvoices(context.Context, *MergeInvoicesRequest) (*MergeInvoicesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MergeInvoices not implemented")
}
func (UnimplementedExportsServiceServer) ExportInvoices(context.Context, *ExportInvoicesRequest) (*ExportInvoicesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportInvoices not implemented")
}
func (UnimplementedExportsServiceServer) ListExportHistory(context.Context, *ListExportHistoryRequest) (*ListExportHistoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListExportHistory not implemented")
}
func (UnimplementedExportsServiceServer) DeleteExportHistory(context.Context, *DeleteExportHistoryRequest) (*DeleteExportHistoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteExportHistory not implemented")
}
func (UnimplementedExportsServiceServer) mustEmbedUnimplementedExportsServiceServer() {}
func (UnimplementedExportsServiceServer) testEmbeddedByValue()                        {}

// UnsafeExportsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportsServiceServer will
// result in compilation errors.
type UnsafeExportsServiceServer interface {
	mustEmbedUnimplementedExportsServiceServer()
}

func RegisterExportsServiceServer(s grpc.ServiceRegistrar, srv ExportsServiceServer) {
	// If the following call pancis, it indicates UnimplementedExportsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportsService_ServiceDesc, srv)
}

func _ExportsService_MergeInvoices_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MergeInvoicesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportsServiceServer).MergeInvoices(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportsService_MergeInvoices_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportsServiceServer).MergeInvoices(ctx, req.(*MergeInvoicesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExportsService_ExportInvoices_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportInvoicesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportsServiceServer).ExportInvoices(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportsService_ExportInvoices_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportsServiceServer).ExportInvoices(ctx, req.(*ExportInvoicesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExportsService_ListExportHistory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListExportHistoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportsServiceServer).ListExportHistory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportsService_ListExportHistory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportsServiceServer).ListExportHistory(ctx, req.(*ListExportHistoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExportsService_DeleteExportHistory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteExportHistoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportsServiceServer).DeleteExportHistory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportsService_DeleteExportHistory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportsServiceServer).DeleteExportHistory(ctx, req.(*DeleteExportHistoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportsService_ServiceDesc is the grpc.ServiceDesc for ExportsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "invoices.v1.ExportsService",
	HandlerType: (*ExportsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "MergeInvoices",
			Handler:    _ExportsService_MergeInvoices_Handler,
		},
		{
			MethodName: "ExportInvoices",
			Handler:    _ExportsService_ExportInvoices_Handler,
		},
		{
			MethodName: "ListExportHistory",
			Handler:    _ExportsService_ListExportHistory_Handler,
		},
		{
			MethodName: "DeleteExportHistory",
			Handler:    _ExportsService_DeleteExportHistory_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "invoices/v1/invoices.proto",
}
