package flags

import "github.com/spf13/pflag"

type Context struct {
	debug              *bool
	logFile            *string
	stylesPath         *string
	background         *string
	markdownBackground *bool
}

// New registers the shared flags on fs. Values are read through the
// accessors after fs has been parsed.
func New(fs *pflag.FlagSet) *Context {
	return &Context{
		debug:              fs.Bool("debug", false, "turns on debug logging"),
		logFile:            fs.String("log-file", "debug.log", "file debug logs are written to"),
		stylesPath:         fs.String("styles", "", "YAML file with style overrides"),
		background:         fs.String("background", "", "file shown as the page behind the dialogs"),
		markdownBackground: fs.Bool("markdown-background", false, "render the background as markdown"),
	}
}

func (c *Context) Debug() bool {
	return *c.debug
}

func (c *Context) LogFile() string {
	if *c.logFile == "" {
		return "debug.log"
	}
	return *c.logFile
}

func (c *Context) StylesPath() string {
	return *c.stylesPath
}

func (c *Context) Background() string {
	return *c.background
}

func (c *Context) MarkdownBackground() bool {
	return *c.markdownBackground
}
