package config

// Built-in agents and MCP servers. Used when the deployment provides no
// YAML registry files, and merged under user-defined entries otherwise
// (user entries win on name collision).

func builtinAgents() map[string]*AgentConfig {
	return map[string]*AgentConfig{
		"KubernetesAgent": {
			AlertTypes: []string{"NamespaceTerminating", "UnidledPods", "PodCrashLooping"},
			MCPServers: []string{"kubernetes-server"},
			CustomInstructions: "Focus on namespace, pod, and deployment state. " +
				"Prefer read-only inspection tools before suggesting remediation.",
		},
		"ArgoCDAgent": {
			AlertTypes: []string{"OutOfSyncApplication"},
			MCPServers: []string{"argocd-server", "kubernetes-server"},
			CustomInstructions: "Correlate application sync status with the " +
				"underlying Kubernetes resources before concluding.",
		},
	}
}

func builtinMCPServers() map[string]*MCPServerConfig {
	return map[string]*MCPServerConfig{
		"kubernetes-server": {
			ServerType: "kubernetes",
			Instructions: "For Kubernetes operations: be precise with namespaces, " +
				"use read-only operations only, and focus on providing actionable insights.",
			Transport: TransportConfig{
				Type:    TransportStdio,
				Command: "npx",
				Args:    []string{"-y", "kubernetes-mcp-server@latest", "--read-only"},
			},
		},
		"argocd-server": {
			ServerType: "argocd",
			Instructions: "For ArgoCD operations: inspect application health and " +
				"sync status; never trigger syncs or rollbacks.",
			Transport: TransportConfig{
				Type: TransportHTTP,
				URL:  "http://localhost:9100/mcp",
			},
		},
	}
}
