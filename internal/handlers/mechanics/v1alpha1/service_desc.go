package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "mechanics.api.v1alpha1.MechanicsService"

// Method names
const (
	MethodCalculatePower     = "CalculatePower"
	MethodCalculateTechnique = "CalculateTechnique"
	MethodCalculateItem      = "CalculateItem"
	MethodResolveRarity      = "ResolveRarity"
	MethodRollDamage         = "RollDamage"
	MethodSaveBuild          = "SaveBuild"
	MethodGetBuild           = "GetBuild"
	MethodListBuilds         = "ListBuilds"
	MethodDeleteBuild        = "DeleteBuild"
)

// MechanicsServiceServer is the server API for the mechanics service. Requests and
// responses are google.protobuf.Struct documents holding the JSON form of the
// orchestrator inputs and outputs.
type MechanicsServiceServer interface {
	CalculatePower(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CalculateTechnique(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CalculateItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ResolveRarity(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RollDamage(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SaveBuild(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetBuild(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListBuilds(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteBuild(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(MechanicsServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func methodDesc(name string, call unaryMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(
			srv any,
			ctx context.Context,
			dec func(any) error,
			interceptor grpc.UnaryServerInterceptor,
		) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(MechanicsServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(MechanicsServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// FullMethod returns the "/service/method" path of a method
func FullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// MechanicsServiceDesc is the grpc.ServiceDesc for the mechanics service
var MechanicsServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MechanicsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		methodDesc(MethodCalculatePower, MechanicsServiceServer.CalculatePower),
		methodDesc(MethodCalculateTechnique, MechanicsServiceServer.CalculateTechnique),
		methodDesc(MethodCalculateItem, MechanicsServiceServer.CalculateItem),
		methodDesc(MethodResolveRarity, MechanicsServiceServer.ResolveRarity),
		methodDesc(MethodRollDamage, MechanicsServiceServer.RollDamage),
		methodDesc(MethodSaveBuild, MechanicsServiceServer.SaveBuild),
		methodDesc(MethodGetBuild, MechanicsServiceServer.GetBuild),
		methodDesc(MethodListBuilds, MechanicsServiceServer.ListBuilds),
		methodDesc(MethodDeleteBuild, MechanicsServiceServer.DeleteBuild),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mechanics/api/v1alpha1/mechanics.proto",
}

// RegisterMechanicsServiceServer registers the service on s
func RegisterMechanicsServiceServer(s grpc.ServiceRegistrar, srv MechanicsServiceServer) {
	s.RegisterService(&MechanicsServiceDesc, srv)
}
