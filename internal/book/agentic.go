package book

import "fmt"

type pattern struct {
	name string
	part int
}

// Indexed by chapter number.
var agenticPatterns = []pattern{
	1:  {"Prompt Chaining", 1},
	2:  {"Routing", 1},
	3:  {"Parallelization", 1},
	4:  {"Reflection", 1},
	5:  {"Tool Use", 1},
	6:  {"Planning", 1},
	7:  {"Multi-Agent", 1},
	8:  {"Memory Management", 2},
	9:  {"Learning and Adaptation", 2},
	10: {"Model Context Protocol (MCP)", 2},
	11: {"Goal Setting and Monitoring", 2},
	12: {"Exception Handling and Recovery", 3},
	13: {"Human-in-the-Loop", 3},
	14: {"Knowledge Retrieval (RAG)", 3},
	15: {"Inter-Agent Communication (A2A)", 4},
	16: {"Resource-Aware Optimization", 4},
	17: {"Reasoning Techniques", 4},
	18: {"Guardrails/Safety Patterns", 4},
	19: {"Evaluation and Monitoring", 4},
	20: {"Prioritization", 4},
	21: {"Exploration and Discovery", 4},
}

var agenticKeyConcepts = map[int][]string{
	1: {
		"Sequential composition of prompts",
		"Output → Input chaining",
		"Step-by-step decomposition",
		"Complex reasoning tasks",
	},
	2: {
		"Dynamic path selection",
		"Request classification",
		"Specialized handlers",
		"Google ADK, LangGraph implementations",
	},
	3: {
		"Concurrent execution",
		"Independent task processing",
		"Efficiency optimization",
		"Google ADK, LangChain implementations",
	},
	4: {
		"Self-evaluation",
		"Iterative improvement",
		"Quality assurance",
		"Multi-agent critique",
	},
	5: {
		"External tool integration",
		"Code execution",
		"Web search",
		"Database queries",
		"CrewAI, LangChain implementations",
	},
	6: {
		"Goal decomposition",
		"Strategic planning",
		"Actionable steps",
		"Research automation",
	},
	7: {
		"Agent coordination",
		"Specialized expertise",
		"Collaborative problem-solving",
		"CrewAI, ADK implementations",
	},
	8: {
		"Persistent storage",
		"Context retrieval",
		"Short-term memory",
		"Long-term memory",
		"Episodic and semantic memory",
	},
	9: {
		"Dynamic adjustment",
		"Feedback-based learning",
		"Performance optimization",
		"OpenEvolve pattern",
	},
	10: {
		"Standardized interface",
		"Model-tool communication",
		"Extensible integration",
		"FastMCP server patterns",
	},
	11: {
		"Objective definition",
		"Progress tracking",
		"Milestone management",
		"Success metrics",
	},
	12: {
		"Error recovery",
		"Retry logic",
		"Fallback behaviors",
		"Graceful degradation",
	},
	13: {
		"Human oversight",
		"Intervention points",
		"Approval workflows",
		"High-stakes decisions",
		"Customer support escalation",
	},
	14: {
		"Retrieval-augmented generation",
		"Factual Q&A",
		"Document analysis",
		"Knowledge bases",
		"LangChain, VertexAI implementations",
	},
	15: {
		"Agent-to-agent communication",
		"Message protocols",
		"Task delegation",
		"Sync, streaming, event-based patterns",
	},
	16: {
		"Resource optimization",
		"Cost management",
		"Latency reduction",
		"Scaling strategies",
	},
	17: {
		"Chain-of-Thought (CoT)",
		"Self-correction",
		"Code execution",
		"DeepSearch techniques",
	},
	18: {
		"Safety constraints",
		"Content filtering",
		"Action validation",
		"Boundary enforcement",
		"Audit logging",
	},
	19: {
		"Performance assessment",
		"LLM-as-Judge",
		"Metrics collection",
		"Observability",
	},
	20: {
		"Task ranking",
		"Resource allocation",
		"Workload management",
		"Priority scheduling",
	},
	21: {
		"Autonomous investigation",
		"Research automation",
		"Hypothesis generation",
		"Agent Laboratory pattern",
	},
}

// AgenticDesignPatterns returns the hand-curated structure of "Agentic Design
// Patterns" by Antonio Gulli. Every call returns a fresh, identical Document.
func AgenticDesignPatterns() *Document {
	doc := &Document{
		Title:      "Agentic Design Patterns",
		Subtitle:   "A Hands-On Guide to Building Intelligent Systems",
		Author:     "Antonio Gulli",
		TotalPages: 482,
		Metadata: Metadata{
			Donation: "All royalties donated to Save the Children",
			Source:   "https://github.com/sarwarbeing-ai/Agentic_Design_Patterns",
		},
	}

	for id := 1; id < len(agenticPatterns); id++ {
		p := agenticPatterns[id]
		doc.Chapters = append(doc.Chapters, Chapter{
			ID:          id,
			Title:       fmt.Sprintf("Chapter %d: %s", id, p.name),
			PatternName: p.name,
			Part:        p.part,
			HasCode:     true,
			Status:      "final",
			Summary:     fmt.Sprintf("Covers the %s pattern for building agentic systems.", p.name),
			KeyConcepts: append([]string(nil), agenticKeyConcepts[id]...),
		})
	}

	doc.Parts = []Part{
		{
			ID:          1,
			Name:        "Core Patterns",
			Chapters:    []int{1, 2, 3, 4, 5, 6, 7},
			TotalPages:  103,
			Description: "Foundational patterns for building agentic systems",
		},
		{
			ID:          2,
			Name:        "Advanced Patterns",
			Chapters:    []int{8, 9, 10, 11},
			TotalPages:  61,
			Description: "Memory, learning, and protocol patterns",
		},
		{
			ID:          3,
			Name:        "Production Patterns",
			Chapters:    []int{12, 13, 14},
			TotalPages:  34,
			Description: "Error handling, human oversight, and knowledge retrieval",
		},
		{
			ID:          4,
			Name:        "Operational Patterns",
			Chapters:    []int{15, 16, 17, 18, 19, 20, 21},
			TotalPages:  114,
			Description: "Communication, optimization, reasoning, and safety",
		},
	}

	doc.Appendices = []Appendix{
		{ID: "A", Title: "Advanced Prompting Techniques", Pages: 28},
		{ID: "B", Title: "AI Agentic: From GUI to Real World Environment", Pages: 6},
		{ID: "C", Title: "Quick Overview of Agentic Frameworks", Pages: 8},
		{ID: "D", Title: "Building an Agent with AgentSpace", Pages: 6, OnlineOnly: true},
		{ID: "E", Title: "AI Agents on the CLI", Pages: 5, OnlineOnly: true},
		{ID: "F", Title: "Under the Hood: Agents' Reasoning Engines", Pages: 14},
		{ID: "G", Title: "Coding Agents", Pages: 7},
	}

	return doc
}
