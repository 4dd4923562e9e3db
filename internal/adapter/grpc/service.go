package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully-qualified gRPC service name
const ServiceName = "homedecide.v1.ProjectionService"

const (
	ProjectFullMethodName              = "/" + ServiceName + "/Project"
	LookupRentFullMethodName           = "/" + ServiceName + "/LookupRent"
	ListCitiesFullMethodName           = "/" + ServiceName + "/ListCities"
	AmortizationScheduleFullMethodName = "/" + ServiceName + "/AmortizationSchedule"
)

// ProjectionServiceServer is the server API for the ProjectionService.
// Requests and responses are google.protobuf.Struct messages carrying JSON-shaped payloads.
type ProjectionServiceServer interface {
	Project(context.Context, *structpb.Struct) (*structpb.Struct, error)
	LookupRent(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCities(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AmortizationSchedule(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterProjectionServiceServer registers srv with the gRPC server s
func RegisterProjectionServiceServer(s grpc.ServiceRegistrar, srv ProjectionServiceServer) {
	s.RegisterService(&ProjectionServiceDesc, srv)
}

func unaryHandler(fullMethod string, call func(ProjectionServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ProjectionServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(ProjectionServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ProjectionServiceDesc is the grpc.ServiceDesc for the ProjectionService
var ProjectionServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ProjectionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Project",
			Handler:    unaryHandler(ProjectFullMethodName, ProjectionServiceServer.Project),
		},
		{
			MethodName: "LookupRent",
			Handler:    unaryHandler(LookupRentFullMethodName, ProjectionServiceServer.LookupRent),
		},
		{
			MethodName: "ListCities",
			Handler:    unaryHandler(ListCitiesFullMethodName, ProjectionServiceServer.ListCities),
		},
		{
			MethodName: "AmortizationSchedule",
			Handler:    unaryHandler(AmortizationScheduleFullMethodName, ProjectionServiceServer.AmortizationSchedule),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "homedecide/v1/projection.proto",
}

// ProjectionServiceClient is the client API for the ProjectionService
type ProjectionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProjectionServiceClient(cc grpc.ClientConnInterface) *ProjectionServiceClient {
	return &ProjectionServiceClient{cc: cc}
}

func (c *ProjectionServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ProjectionServiceClient) Project(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ProjectFullMethodName, in, opts...)
}

func (c *ProjectionServiceClient) LookupRent(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, LookupRentFullMethodName, in, opts...)
}

func (c *ProjectionServiceClient) ListCities(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ListCitiesFullMethodName, in, opts...)
}

func (c *ProjectionServiceClient) AmortizationSchedule(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, AmortizationScheduleFullMethodName, in, opts...)
}
