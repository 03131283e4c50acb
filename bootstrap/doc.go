// Package bootstrap runs a service's lifecycle: config defaults and
// validation, logger setup, component start in registration order, hooks,
// signal handling and graceful shutdown in reverse order.
//
//	app, err := bootstrap.NewApp(&cfg)
//	if err != nil {
//	    return err
//	}
//	_ = app.RegisterComponent(server.NewComponent(srv))
//	return app.Run(ctx)
//
// RunTask is the finite variant for one-shot commands.
package bootstrap
