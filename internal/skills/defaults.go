package skills

// Skill categories used by the default dictionary.
const (
	CategoryLanguages   = "programming languages"
	CategoryWeb         = "web frameworks"
	CategoryData        = "data and databases"
	CategoryCloud       = "cloud and infrastructure"
	CategoryML          = "machine learning"
	CategoryRecruiting  = "recruiting and hr"
	CategoryManagement  = "project management"
	CategoryOfficeTools = "office tools"
)

// defaultEntries is the built-in synonym/category dictionary. Callers can
// extend or override it with LoadDictionary.
var defaultEntries = map[string]Entry{
	"python":     {Category: CategoryLanguages, Synonyms: []string{"python3"}},
	"go":         {Category: CategoryLanguages, Synonyms: []string{"golang", "go lang"}},
	"java":       {Category: CategoryLanguages},
	"c++":        {Category: CategoryLanguages, Synonyms: []string{"cpp"}},
	"c#":         {Category: CategoryLanguages, Synonyms: []string{"csharp", "c sharp"}},
	"ruby":       {Category: CategoryLanguages},
	"javascript": {Category: CategoryLanguages, Synonyms: []string{"js", "ecmascript"}},
	"typescript": {Category: CategoryLanguages, Synonyms: []string{"ts"}},

	"react":   {Category: CategoryWeb, Synonyms: []string{"react.js", "reactjs"}},
	"vue":     {Category: CategoryWeb, Synonyms: []string{"vue.js", "vuejs"}},
	"angular": {Category: CategoryWeb, Synonyms: []string{"angularjs"}},
	"node.js": {Category: CategoryWeb, Synonyms: []string{"nodejs", "node"}},
	"django":  {Category: CategoryWeb},
	"fastapi": {Category: CategoryWeb},

	"sql":           {Category: CategoryData, Synonyms: []string{"structured query language"}},
	"postgresql":    {Category: CategoryData, Synonyms: []string{"postgres"}},
	"mysql":         {Category: CategoryData},
	"mongodb":       {Category: CategoryData, Synonyms: []string{"mongo"}},
	"redis":         {Category: CategoryData},
	"elasticsearch": {Category: CategoryData},

	"aws":        {Category: CategoryCloud, Synonyms: []string{"amazon web services"}},
	"gcp":        {Category: CategoryCloud, Synonyms: []string{"google cloud", "google cloud platform"}},
	"azure":      {Category: CategoryCloud, Synonyms: []string{"microsoft azure"}},
	"docker":     {Category: CategoryCloud, Synonyms: []string{"containers"}},
	"kubernetes": {Category: CategoryCloud, Synonyms: []string{"k8s"}},
	"terraform":  {Category: CategoryCloud},
	"ci/cd":      {Category: CategoryCloud, Synonyms: []string{"continuous integration", "continuous delivery"}},

	"machine learning": {Category: CategoryML, Synonyms: []string{"ml"}},
	"deep learning":    {Category: CategoryML},
	"nlp":              {Category: CategoryML, Synonyms: []string{"natural language processing"}},
	"pytorch":          {Category: CategoryML},
	"tensorflow":       {Category: CategoryML},

	"recruiting":           {Category: CategoryRecruiting, Synonyms: []string{"recruitment", "talent acquisition"}},
	"sourcing":             {Category: CategoryRecruiting, Synonyms: []string{"candidate sourcing"}},
	"onboarding":           {Category: CategoryRecruiting, Synonyms: []string{"employee onboarding"}},
	"hris":                 {Category: CategoryRecruiting, Synonyms: []string{"hr information systems"}},
	"employee relations":   {Category: CategoryRecruiting},
	"performance reviews":  {Category: CategoryRecruiting, Synonyms: []string{"performance management"}},
	"benefits":             {Category: CategoryRecruiting, Synonyms: []string{"benefits administration"}},
	"interview scheduling": {Category: CategoryRecruiting},

	"agile":              {Category: CategoryManagement, Synonyms: []string{"scrum", "kanban"}},
	"project management": {Category: CategoryManagement, Synonyms: []string{"program management"}},
	"jira":               {Category: CategoryManagement},

	"excel":      {Category: CategoryOfficeTools, Synonyms: []string{"microsoft excel", "spreadsheets"}},
	"powerpoint": {Category: CategoryOfficeTools, Synonyms: []string{"microsoft powerpoint"}},
}

// DefaultDictionary returns the built-in dictionary.
func DefaultDictionary() *Dictionary {
	return NewDictionary(defaultEntries)
}
