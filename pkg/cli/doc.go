/*
Package cli provides command-line utilities shared by the vesta command.

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	if err := srv.Start(ctx); err != nil {
	    return err
	}

The first signal cancels the context so the server can drain in-flight
requests; a second signal aborts the process immediately.

Output Formatting:

Commands that print structured results (such as "vesta history") support
text and JSON output:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
	    return err
	}

Errors:

ConfigError and CommandError give command failures a uniform shape for
the root command's error reporting.
*/
package cli
