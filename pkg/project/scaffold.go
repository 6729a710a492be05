package project

// Files written by Init. Only the description, main source and modules are
// kept in sync afterwards.
const (
	MainSourceFile      = "init.server.luau"
	DescriptionFile     = "README.md"
	TypeDefinitionsFile = "types.d.luau"
	EditorSettingsDir   = ".vscode"
	EditorSettingsFile  = "settings.json"
)

const editorSettings = `{
	"luau-lsp.types.robloxSecurityLevel": "None",
	"luau-lsp.types.definitionFiles": ["types.d.luau"]
}`

const mainSourceStub = `-- you can require packages with requireM("path") where path is a file inside of pkg (no extension)`

const descriptionStub = `# stuff here`

const typeDefinitions = `declare loadstringEnabled: boolean
declare owner: Player
declare arguments: { any }

declare isolatedStorage: {
  get: (name: string) -> any,
  set: (name: string, value: any?) -> ()
}

declare immediateSignals: boolean
declare NLS: (source: string, parent: Instance?) -> LocalScript
declare requireM: (moduleName: string) -> any

declare LoadAssets: (assetId: number) -> {
  Get: (asset: string) -> Instance,
  Exists: (asset: string) -> boolean,
  GetNames: () -> { string },
  GetArray: () -> { Instance },
  GetDictionary: () -> { [string]: Instance }
}`
