// Command exprtree parses, prints, simplifies and evaluates arithmetic
// expressions written in prefix notation.
package main

import (
	"bufio"
	"exprtree-go/exprserve"
	"exprtree-go/exprtool"
	"exprtree-go/exprtree"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/tevino/abool/v2"
)

const (
	kExitSuccess = 0
	kExitFailure = 1
	kExitUsage   = 2

	kServeTool = "serve"
)

type Binding struct {
	Name  string
	Value int
}

// / Command-line options.
type Options struct {
	/// Configuration file read before the flags are applied.
	ConfigFile string

	/// Tool to run; empty means the configured one.
	Tool string

	/// -D bindings, in command-line order.
	Bindings []Binding

	/// Reject trailing tokens.
	Strict bool

	/// Listen address for the service; empty means the configured one.
	Listen string

	/// Expressions given as arguments.
	Args []string
}

// TerminateHandler sets interrupted on the first SIGINT or SIGTERM and then
// restores the default handling, so a second signal ends the process even
// while stdin blocks. The returned func stops watching.
func TerminateHandler(interrupted *abool.AtomicBool) func() {
	quit := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-quit:
			interrupted.Set()
			signal.Reset(syscall.SIGINT, syscall.SIGTERM)
		case <-done:
		}
	}()
	return func() {
		signal.Stop(quit)
		close(done)
	}
}

// / Print usage information.
func Usage() {
	fmt.Fprintf(stderr,
		"usage: exprtree [options] [expression...]\n"+
			"\n"+
			"each expression is in prefix notation, e.g. \"- + 2 15 c\"; with no\n"+
			"expressions, one expression is read per line from stdin. use '--'\n"+
			"before an expression that starts with '-'.\n"+
			"\n"+
			"options:\n"+
			"  -h            print this help\n"+
			"  -V            print exprtree version (\"%s\")\n"+
			"  -c FILE       read configuration from FILE\n"+
			"  -t TOOL       run a tool [default=%s] (use '-t list' to list tools)\n"+
			"  -D VAR=VALUE  bind a variable (repeatable)\n"+
			"  -s            strict parsing: reject trailing tokens\n"+
			"  -l ADDR       listen address for '-t serve' [default=%s]\n"+
			"  -d MODE       enable debugging (use '-d list' to list modes)\n",
		kExprtreeVersion, kDefaultTool, kDefaultListen)
}

// / Enable a debugging mode.  Returns false if exprtree should exit instead
// / of continuing.
func DebugEnable(name string) bool {
	if name == "list" {
		fmt.Fprintf(stdout, "debugging modes:\n"+
			"  stats        print operation counts/timing info\n")
		return false
	} else if name == "stats" {
		GMetrics = &Metrics{}
		return true
	} else {
		suggestion := SpellcheckString(name, "stats")
		if suggestion != "" {
			Error("unknown debug setting '%s', did you mean '%s'?", name, suggestion)
		} else {
			Error("unknown debug setting '%s'", name)
		}
		return false
	}
}

// ChooseTool checks a tool name. "list" prints the tools and reports false.
func ChooseTool(toolName string) bool {
	if toolName == "list" {
		fmt.Fprintf(stdout, "exprtree tools:\n")
		for _, tool := range exprtool.Tools() {
			fmt.Fprintf(stdout, "%11s  %s\n", tool.Name, tool.Desc)
		}
		fmt.Fprintf(stdout, "%11s  %s\n", kServeTool, "serve the tools over HTTP")
		return false
	}
	if toolName == kServeTool || exprtool.Lookup(toolName) != nil {
		return true
	}
	words := append(exprtool.Names(), kServeTool)
	suggestion := SpellcheckString(toolName, words...)
	if suggestion != "" {
		Error("unknown tool '%s', did you mean '%s'?", toolName, suggestion)
	} else {
		Error("unknown tool '%s'", toolName)
	}
	return false
}

// / Parse args for command-line options.
// / Returns an exit code, or -1 if exprtree should continue.
func ReadFlags(args []string, options *Options) int {
	opts, optind, err := getopt.Getopts(args, "c:d:D:hl:st:V")
	if err != nil {
		Error("%v", err)
		Usage()
		return kExitUsage
	}
	for _, optV := range opts {
		optarg := optV.Value
		switch optV.Option {
		case 'c':
			options.ConfigFile = optarg
		case 'd':
			if !DebugEnable(optarg) {
				if optarg == "list" {
					return kExitSuccess
				}
				return kExitUsage
			}
		case 'D':
			name, value, err := exprtree.ParseBinding(optarg)
			if err != nil {
				Error("-D %s: %v", optarg, err)
				return kExitUsage
			}
			options.Bindings = append(options.Bindings, Binding{name, value})
		case 'l':
			options.Listen = optarg
		case 's':
			options.Strict = true
		case 't':
			if !ChooseTool(optarg) {
				if optarg == "list" {
					return kExitSuccess
				}
				return kExitUsage
			}
			options.Tool = optarg
		case 'V':
			fmt.Fprintf(stdout, "%s\n", kExprtreeVersion)
			return kExitSuccess
		default: // case 'h':
			Usage()
			return kExitSuccess
		}
	}
	options.Args = args[optind:]
	return -1
}

func realMain(args []string, stdin io.Reader) int {
	options := Options{}
	if exitCode := ReadFlags(args, &options); exitCode >= 0 {
		return exitCode
	}

	config := NewConfig()
	if options.ConfigFile != "" {
		var err error
		if config, err = LoadConfig(options.ConfigFile); err != nil {
			Error("%v", err)
			return kExitFailure
		}
	}

	toolName := config.Expr.Tool
	if options.Tool != "" {
		toolName = options.Tool
	} else if !ChooseTool(toolName) {
		return kExitUsage
	}
	strict := config.Expr.Strict || options.Strict

	configEnv, err := config.Env()
	if err != nil {
		Error("%v", err)
		return kExitFailure
	}
	env := exprtree.NewBindingEnvWithParent(configEnv)
	for _, binding := range options.Bindings {
		if err := env.AddBinding(binding.Name, binding.Value); err != nil {
			Error("%v", err)
			return kExitUsage
		}
	}

	if toolName == kServeTool {
		listen := config.Expr.Listen
		if options.Listen != "" {
			listen = options.Listen
		}
		return serve(listen, time.Duration(config.Expr.StatsInterval)*time.Second, env, strict)
	}

	tool := exprtool.Lookup(toolName)
	exitCode := kExitSuccess
	count := 0
	stopwatch := NewStopwatch()
	run := func(expression string) {
		count++
		var out string
		var err error
		MetricRecord(tool.Name, func() {
			out, err = tool.Run(expression, env, strict)
		})
		if err != nil {
			Error("%q: %v", expression, err)
			exitCode = kExitFailure
			return
		}
		fmt.Fprintln(stdout, out)
	}

	if len(options.Args) > 0 {
		for _, expression := range options.Args {
			run(expression)
		}
	} else {
		interrupted := abool.NewBool(false)
		stop := TerminateHandler(interrupted)
		scanner := bufio.NewScanner(stdin)
		for !interrupted.IsSet() && scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				run(line)
			}
		}
		stop()
		if err := scanner.Err(); err != nil {
			Error("reading input: %v", err)
			exitCode = kExitFailure
		}
		if interrupted.IsSet() {
			Warning("interrupted after %d expression(s)", count)
			exitCode = kExitFailure
		}
	}

	if GMetrics != nil {
		GMetrics.Report(stdout)
		Info("%d expression(s) in %.3fs", count, stopwatch.Elapsed())
	}
	return exitCode
}

func serve(listen string, statsInterval time.Duration, env *exprtree.BindingEnv, strict bool) int {
	service := exprserve.NewService(env, strict)
	if err := service.StartStats(statsInterval); err != nil {
		Error("%v", err)
		return kExitFailure
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- service.ListenAndServe(listen)
	}()

	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)

	exitCode := kExitSuccess
	select {
	case err := <-serveErr:
		Error("serving %s: %v", listen, err)
		exitCode = kExitFailure
	case <-sigch:
		Info("interrupted, exiting")
	}
	if err := service.Shutdown(); err != nil {
		Error("%v", err)
		exitCode = kExitFailure
	}
	return exitCode
}

func main() {
	os.Exit(realMain(os.Args, os.Stdin))
}
