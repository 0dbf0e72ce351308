// Package errors is the error model shared by the mechanics service.
//
// Every layer returns *Error values carrying a Code. Repositories produce the
// original classification (a missing catalog is NotFound, a malformed part is
// InvalidArgument), orchestrators add context with Wrap or Wrapf, which keeps the
// code, and the gRPC handlers convert at the edge with ToGRPCError:
//
//	parts, err := o.catalogRepo.GetParts(ctx, catalog.GetPartsInput{Kind: kind})
//	if err != nil {
//		return nil, errors.Wrapf(err, "failed to load %s catalog", kind)
//	}
//
// Config and input validation collect per-field problems with a ValidationBuilder
// and return a single InvalidArgument error whose metadata lists the fields.
package errors
