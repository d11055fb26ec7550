package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level shape of a build file. Every attribute is
// optional so that defaults can fill the gaps.
type fileRoot struct {
	RootPath     *string          `hcl:"root_path,optional"`
	Spreadsheets []string         `hcl:"spreadsheets,optional"`
	Platforms    []string         `hcl:"platforms,optional"`
	Credentials  *string          `hcl:"credentials,optional"`
	Paths        *pathsBlock      `hcl:"paths,block"`
	Remote       *remoteBlock     `hcl:"remote,block"`
	Classify     []*classifyBlock `hcl:"classify,block"`
	Sinks        []*sinkBlock     `hcl:"sink,block"`
}

type pathsBlock struct {
	Speech   *string `hcl:"speech,optional"`
	Synonyms *string `hcl:"synonyms,optional"`
	Views    *string `hcl:"views,optional"`
	Content  *string `hcl:"content,optional"`
}

type remoteBlock struct {
	RequestsPerSecond *float64 `hcl:"requests_per_second,optional"`
	Burst             *int     `hcl:"burst,optional"`
}

// classifyBlock is `classify "<marker>" { type = "<sheet type>" }`.
type classifyBlock struct {
	Marker string `hcl:"marker,label"`
	Type   string `hcl:"type"`
}

// sinkBlock is `sink "<type>" { ... }`. Its attributes are sink specific and
// decoded as strings.
type sinkBlock struct {
	Type string   `hcl:"type,label"`
	Body hcl.Body `hcl:",remain"`
}
