package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-mechanics/internal/errors"
)

// Client calls the mechanics service over a grpc connection
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient creates a client on conn
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Call invokes method with in encoded as a Struct and decodes the response into out.
// Status errors are converted back to internal errors.
func (c *Client) Call(ctx context.Context, method string, in, out any, opts ...grpc.CallOption) error {
	req, err := ToStruct(in)
	if err != nil {
		return err
	}

	resp := &structpb.Struct{}
	if err := c.conn.Invoke(ctx, FullMethod(method), req, resp, opts...); err != nil {
		return errors.FromGRPCError(err)
	}

	return FromStruct(resp, out)
}
