package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/cfgdot/internal/app"
	"github.com/vk/cfgdot/internal/testutil"
)

const appCfg = `
+App = {
    Class = RealTimeApplication
    +Functions = {
        Class = ReferenceContainer
        +M1 = {
            Class = TypeA
            OutputSignals = {
                Out = { DataSource = DS1 }
            }
        }
        +G1 = {
            Class = ReferenceContainer
            +M2 = {
                Class = TypeB
                InputSignals = {
                    In = { DataSource = DS1 }
                }
            }
        }
    }
    +Data = {
        Class = ReferenceContainer
        +DS1 = { Class = StoreA }
    }
    +States = {
        Class = ReferenceContainer
        +S1 = {
            Class = RealTimeState
            +Threads = {
                Class = ReferenceContainer
                +T1 = {
                    Class = RealTimeThread
                    Functions = { M1 G1.M2 }
                }
            }
        }
    }
}
`

const appHCL = `
node "+App" {
  Class = RealTimeApplication

  node "+Functions" {
    Class = ReferenceContainer

    node "+M1" {
      Class = TypeA
      node "OutputSignals" {
        node "Out" {
          DataSource = DS1
        }
      }
    }

    node "+G1" {
      Class = ReferenceContainer
      node "+M2" {
        Class = TypeB
        node "InputSignals" {
          node "In" {
            DataSource = "DS1"
          }
        }
      }
    }
  }

  node "+Data" {
    Class = ReferenceContainer
    node "+DS1" {
      Class = StoreA
    }
  }

  node "+States" {
    Class = ReferenceContainer
    node "+S1" {
      Class = RealTimeState
      node "+Threads" {
        Class = ReferenceContainer
        node "+T1" {
          Class     = RealTimeThread
          Functions = [M1, G1.M2]
        }
      }
    }
  }
}
`

const appYAML = `
+App:
  Class: RealTimeApplication
  +Functions:
    Class: ReferenceContainer
    +M1:
      Class: TypeA
      OutputSignals:
        Out:
          DataSource: DS1
    +G1:
      Class: ReferenceContainer
      +M2:
        Class: TypeB
        InputSignals:
          In:
            DataSource: DS1
  +Data:
    Class: ReferenceContainer
    +DS1:
      Class: StoreA
  +States:
    Class: ReferenceContainer
    +S1:
      Class: RealTimeState
      +Threads:
        Class: ReferenceContainer
        +T1:
          Class: RealTimeThread
          Functions: [M1, G1.M2]
`

const appJSON = `{
  "+App": {
    "Class": "RealTimeApplication",
    "+Functions": {
      "Class": "ReferenceContainer",
      "+M1": {"Class": "TypeA", "OutputSignals": {"Out": {"DataSource": "DS1"}}},
      "+G1": {
        "Class": "ReferenceContainer",
        "+M2": {"Class": "TypeB", "InputSignals": {"In": {"DataSource": "DS1"}}}
      }
    },
    "+Data": {"Class": "ReferenceContainer", "+DS1": {"Class": "StoreA"}},
    "+States": {
      "Class": "ReferenceContainer",
      "+S1": {
        "Class": "RealTimeState",
        "+Threads": {
          "Class": "ReferenceContainer",
          "+T1": {"Class": "RealTimeThread", "Functions": ["M1", "G1.M2"]}
        }
      }
    }
  }
}`

const appTOML = `
["+App"]
Class = "RealTimeApplication"

["+App"."+Functions"]
Class = "ReferenceContainer"

["+App"."+Functions"."+M1"]
Class = "TypeA"

["+App"."+Functions"."+M1".OutputSignals.Out]
DataSource = "DS1"

["+App"."+Functions"."+G1"]
Class = "ReferenceContainer"

["+App"."+Functions"."+G1"."+M2"]
Class = "TypeB"

["+App"."+Functions"."+G1"."+M2".InputSignals.In]
DataSource = "DS1"

["+App"."+Data"]
Class = "ReferenceContainer"

["+App"."+Data"."+DS1"]
Class = "StoreA"

["+App"."+States"]
Class = "ReferenceContainer"

["+App"."+States"."+S1"]
Class = "RealTimeState"

["+App"."+States"."+S1"."+Threads"]
Class = "ReferenceContainer"

["+App"."+States"."+S1"."+Threads"."+T1"]
Class = "RealTimeThread"
Functions = ["M1", "G1.M2"]
`

func views(t *testing.T, file, content string) (rtApp, state string) {
	t.Helper()
	result := testutil.RunApp(t, map[string]string{file: content}, file, func(cfg *app.Config) {
		cfg.Views = []string{app.ViewApplication, app.ViewStates}
	})
	require.NoError(t, result.Err, "log output:\n%s", result.LogOutput)
	return testutil.ReadArtifact(t, result, "RTApp"), testutil.ReadArtifact(t, result, "StateS1")
}

// Test for: every input format yields byte-identical views for the same
// application.
func TestFormats_ProduceIdenticalViews(t *testing.T) {
	wantApp, wantState := views(t, "app.cfg", appCfg)
	require.Contains(t, wantApp, `"S1.T1.M1"->"S1.T1.G1.M2"`)
	require.Contains(t, wantState, `"S1.T1.M1"->"DS1"`)
	require.Contains(t, wantState, `"DS1"->"S1.T1.G1.M2"`)

	testCases := []struct {
		file    string
		content string
	}{
		{file: "app.hcl", content: appHCL},
		{file: "app.yaml", content: appYAML},
		{file: "app.json", content: appJSON},
		{file: "app.toml", content: appTOML},
	}
	for _, tc := range testCases {
		t.Run(tc.file, func(t *testing.T) {
			gotApp, gotState := views(t, tc.file, tc.content)
			assert.Equal(t, wantApp, gotApp)
			assert.Equal(t, wantState, gotState)
		})
	}
}

// Test for: an explicit format overrides the file extension.
func TestFormats_ExplicitFormatOverridesExtension(t *testing.T) {
	result := testutil.RunApp(t, map[string]string{"app.conf": appYAML}, "app.conf", func(cfg *app.Config) {
		cfg.Format = "yml"
		cfg.Views = []string{app.ViewApplication}
	})
	require.NoError(t, result.Err)
	assert.Contains(t, testutil.ReadArtifact(t, result, "RTApp"), `"S1.T1.G1.M2"`)
}
