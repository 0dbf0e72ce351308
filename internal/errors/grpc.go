package errors

import (
	"encoding/json"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

var toGRPC = map[Code]codes.Code{
	CodeOK:                 codes.OK,
	CodeCanceled:           codes.Canceled,
	CodeInvalidArgument:    codes.InvalidArgument,
	CodeDeadlineExceeded:   codes.DeadlineExceeded,
	CodeNotFound:           codes.NotFound,
	CodeAlreadyExists:      codes.AlreadyExists,
	CodePermissionDenied:   codes.PermissionDenied,
	CodeResourceExhausted:  codes.ResourceExhausted,
	CodeFailedPrecondition: codes.FailedPrecondition,
	CodeAborted:            codes.Aborted,
	CodeOutOfRange:         codes.OutOfRange,
	CodeUnimplemented:      codes.Unimplemented,
	CodeInternal:           codes.Internal,
	CodeUnavailable:        codes.Unavailable,
	CodeDataLoss:           codes.DataLoss,
	CodeUnauthenticated:    codes.Unauthenticated,
}

var fromGRPC = func() map[codes.Code]Code {
	out := make(map[codes.Code]Code, len(toGRPC))
	for c, g := range toGRPC {
		out[g] = c
	}
	return out
}()

// GRPCCode returns the matching gRPC status code, codes.Unknown for unmapped codes
func (c Code) GRPCCode() codes.Code {
	if g, ok := toGRPC[c]; ok {
		return g
	}
	return codes.Unknown
}

// ToGRPCError converts err into a gRPC status error. Metadata on an *Error travels as a
// structpb.Struct detail; errors that are already statuses pass through untouched.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var e *Error
	if !errors.As(err, &e) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(e.Code.GRPCCode(), e.Message)
	if details := metaToStruct(e.Meta); details != nil {
		if detailed, err := st.WithDetails(details); err == nil {
			st = detailed
		}
	}
	return st.Err()
}

// FromGRPCError converts a gRPC status error back into an *Error, restoring metadata
// carried as a structpb.Struct detail. Non-status errors are returned as is.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	code, ok := fromGRPC[st.Code()]
	if !ok {
		code = CodeInternal
	}

	out := &Error{Code: code, Message: st.Message()}
	for _, detail := range st.Details() {
		if s, ok := detail.(*structpb.Struct); ok {
			out.Meta = s.AsMap()
			break
		}
	}
	return out
}

// metaToStruct goes through JSON so typed values like map[string][]string are accepted
func metaToStruct(meta map[string]interface{}) *structpb.Struct {
	if len(meta) == 0 {
		return nil
	}

	data, err := json.Marshal(meta)
	if err != nil {
		return nil
	}

	s := &structpb.Struct{}
	if err := protojson.Unmarshal(data, s); err != nil {
		return nil
	}
	return s
}
