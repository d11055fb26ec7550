package app

import (
	"github.com/specialistvlad/voxgrid/internal/registry"
	"github.com/specialistvlad/voxgrid/modules/actionsongoogle"
	"github.com/specialistvlad/voxgrid/modules/content"
	"github.com/specialistvlad/voxgrid/modules/dialogflow"
	"github.com/specialistvlad/voxgrid/modules/local"
	"github.com/specialistvlad/voxgrid/modules/print"
	"github.com/specialistvlad/voxgrid/modules/s3"
)

// coreModules is the definitive list of all modules that are compiled into
// the voxgrid binary.
var coreModules = []registry.Module{
	&dialogflow.Module{},
	&actionsongoogle.Module{},
	&content.Module{},
	&local.Module{},
	&print.Module{},
	&s3.Module{},
}

// everyBuild lists platforms generated by every build, whether or not the
// build file names them.
var everyBuild = []string{content.Name}
