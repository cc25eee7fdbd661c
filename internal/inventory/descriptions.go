package inventory

// NoDescription is the fallback for resource types absent from the table.
const NoDescription = "No description available"

// descriptions maps common Azure resource types to human-readable
// descriptions. Constant for the process.
var descriptions = map[string]string{
	"Microsoft.Compute/virtualMachines":                "Virtual machines for running applications and workloads",
	"Microsoft.Storage/storageAccounts":                "Storage accounts for data storage and file sharing",
	"Microsoft.Web/sites":                              "App Service web applications and APIs",
	"Microsoft.Sql/servers":                            "Azure SQL Database servers",
	"Microsoft.Sql/servers/databases":                  "Azure SQL databases",
	"Microsoft.Network/virtualNetworks":                "Virtual networks for network isolation",
	"Microsoft.Network/networkSecurityGroups":          "Network security groups for traffic filtering",
	"Microsoft.Network/publicIPAddresses":              "Public IP addresses for internet connectivity",
	"Microsoft.Network/loadBalancers":                  "Load balancers for distributing traffic",
	"Microsoft.Network/networkInterfaces":              "Network interfaces for VM connectivity",
	"Microsoft.KeyVault/vaults":                        "Key vaults for secrets and certificate management",
	"Microsoft.Insights/components":                    "Application Insights for application monitoring",
	"Microsoft.Authorization/roleAssignments":          "Role assignments for access control",
	"Microsoft.Resources/resourceGroups":               "Resource groups for organizing resources",
	"Microsoft.ContainerRegistry/registries":           "Container registries for Docker images",
	"Microsoft.ContainerService/managedClusters":       "Azure Kubernetes Service clusters",
	"Microsoft.ServiceBus/namespaces":                  "Service Bus namespaces for messaging",
	"Microsoft.EventHub/namespaces":                    "Event Hub namespaces for event streaming",
	"Microsoft.Logic/workflows":                        "Logic Apps for workflow automation",
	"Microsoft.Web/serverfarms":                        "App Service plans for hosting web apps",
	"Microsoft.CognitiveServices/accounts":             "Cognitive Services for AI capabilities",
	"Microsoft.MachineLearningServices/workspaces":     "Machine Learning workspaces",
	"Microsoft.DocumentDB/databaseAccounts":            "Cosmos DB database accounts",
	"Microsoft.Cache/Redis":                            "Azure Cache for Redis",
	"Microsoft.ApiManagement/service":                  "API Management services",
	"Microsoft.DataFactory/factories":                  "Data Factory for data integration",
	"Microsoft.StreamAnalytics/streamingjobs":          "Stream Analytics for real-time analytics",
	"Microsoft.Automation/automationAccounts":          "Automation accounts for runbooks",
	"Microsoft.RecoveryServices/vaults":                "Recovery Services vaults for backup",
	"Microsoft.Network/applicationGateways":            "Application gateways for web traffic management",
	"Microsoft.OperationalInsights/workspaces":         "Log Analytics workspaces for monitoring and logging",
	"Microsoft.Security/automations":                   "Security Center automation rules",
	"Microsoft.ManagedIdentity/userAssignedIdentities": "User-assigned managed identities",
	"Microsoft.AlertsManagement/actionRules":           "Action rules for alert management",
	"Microsoft.Monitor/actionGroups":                   "Action groups for alert notifications",
}

// Describe returns the description for a resource type, or NoDescription
// when the type is not in the table.
func Describe(resourceType string) string {
	if d, ok := descriptions[resourceType]; ok {
		return d
	}
	return NoDescription
}
