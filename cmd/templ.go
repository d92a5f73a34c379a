package cmd

const HELP_TEMPL = `Usage: {{if .UsageText}}{{.UsageText}}{{else}}{{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}{{if .Commands}} command [command options]{{end}} {{if .ArgsUsage}}{{.ArgsUsage}}{{else}}[arguments...]{{end}}{{end}}
{{.Description}}{{if .VisibleCommands}}
Commands:{{range .VisibleCategories}}{{if .Name}}

{{.Name}}:{{range .VisibleCommands}}
  {{join .Names ", "}}{{"\t"}}{{.Usage}}{{end}}{{else}}{{range .VisibleCommands}}
{{"\t"}}{{index .Names 0}}{{"\t:\t"}}{{.Usage}}{{end}}{{end}}{{end}}{{end}}{{if .VisibleFlags}}

Global Flags:{{range .VisibleFlags}}
  {{.}}{{end}}{{end}}

Use "{{.HelpName}} help <command>" for more information about any command.

`

const CMD_HELP_TEMPL = `{{if .Description}}{{.Description}}{{else}}{{.HelpName}} - {{.Usage}}

{{end}}Usage:
        {{.HelpName}} {{if .UsageText}}{{.UsageText}}{{else}}[arguments...]{{end}}{{if .VisibleFlags}}

Supported Flags:{{range .VisibleFlags}}
  {{.}}{{end}}{{end}}

`

const DESCRIPTION = `
cidsdk talks to the CID daemon that orchestrates the current CI job.
It reads the daemon connection from CID_API_SOCKET or CID_API_ADDR
and authenticates with CID_API_SECRET when it is set.
`

const (
	ModulesDescription = `The modules command lists all modules discovered in the
project, submodules are nested below their parent.

Example:
        cidsdk modules
        cidsdk modules --tree

`
	CommitsDescription = `The commits command lists the commits between two
references. References are written as hash/<sha> or tag/<name>,
an empty reference means the current HEAD or the first commit.

Example:
        cidsdk commits --from tag/v1.0.0 --limit 20

`
	ExecDescription = `The exec command lets the daemon run a command, inside a
container if the action is configured to use one. Use -- to
separate the command from the cidsdk flags.

Example:
        cidsdk exec --capture -- go version

`
	UploadDescription = `The upload command stores a local file as artifact of
the current job. Later actions can list and download it.

Example:
        cidsdk upload --type report --format sarif report.sarif.json

`
	DownloadDescription = `The download command fetches an artifact into a local
file. The file is only created once the download completed.

Example:
        cidsdk download --type binary --target bin/app app
        cidsdk download --id "root|binary|app" --target bin/app

`
)
