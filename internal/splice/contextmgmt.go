package splice

const contextManagementHeader = "// Get context management settings (default to Version 3 fixed_80 strategy)"

// ContextManagement rewrites the auto-summarize threshold check in the agent
// coordinator to honor the configured context management strategy.
var ContextManagement = Patch{
	Window: Window{
		Start:     561,
		End:       569,
		ScanLimit: 40,
	},
	Anchor:    "if model != nil && model.CatwalkCfg.ContextWindow > 0",
	EndMarker: `if strings.HasPrefix(prompt, "/")`,
	EndOffset: 2,
	Skip:      2,
	Block: []string{
		contextManagementHeader + "\n",
		"ctxMgmt := cfg.Options.ContextManagement\n",
		"if ctxMgmt == nil || ctxMgmt.EnableAuto {\n",
		"\tthreshold := 0.75 // Default: trigger at 75%\n",
		"\tif ctxMgmt != nil {\n",
		"\t\t// Version 1 (ai_cerebras) or Version 2 (ai_same_provider) uses proactive threshold\n",
		"\t\tif ctxMgmt.Strategy == \"ai_cerebras\" || ctxMgmt.Strategy == \"ai_same_provider\" {\n",
		"\t\t\tthreshold = ctxMgmt.ProactiveCompactThreshold\n",
		"\t\t} else {\n",
		"\t\t\t// Version 3 (fixed_80) uses compact threshold\n",
		"\t\t\tthreshold = ctxMgmt.CompactThreshold\n",
		"\t\t}\n",
		"\t}\n",
		"\n",
		"\t\t\t\"threshold\", threshold,\n",
		"\t\t\t\"strategy\", ctxMgmt.Strategy,\n",
	},
	Applied: contextManagementHeader,
}
