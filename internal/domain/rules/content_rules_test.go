package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfconform/tfconform/internal/domain"
	"github.com/tfconform/tfconform/internal/domain/rules"
)

func TestMagicNumberRule(t *testing.T) {
	rule := &rules.MagicNumberRule{}

	ctx := ctxFor(map[string]string{
		"main.tf": `resource "azurerm_network_security_group" "nsg" {
  destination_port_range = "443"
  priority               = 100
  ssh_target             = 22
  metadata_ip            = "169.254.169.254"
  https_port             = local.https_port
}
`,
		"locals_constants.tf": `locals {
  https_port = 443
}
`,
	})

	findings := rule.Check(ctx)
	require.Len(t, findings, 3)

	assert.Equal(t, 2, findings[0].Line)
	assert.Contains(t, findings[0].Message, "443")
	assert.Contains(t, findings[1].Message, "SSH")
	assert.Contains(t, findings[2].Message, "169.254.169.254")
	for _, f := range findings {
		assert.Equal(t, "main.tf", f.File)
	}
}

func TestStringBooleanRule_Default(t *testing.T) {
	rule := &rules.StringBooleanRule{}

	ctx := ctxFor(map[string]string{
		"variables.tf": `variable "enable_monitoring" {
  type    = string
  default = "yes"
}

variable "debug" {
  type    = bool
  default = true
}
`,
	})

	findings := rule.Check(ctx)
	require.Len(t, findings, 1)
	assert.Equal(t, domain.SeverityError, findings[0].Severity)
	assert.Equal(t, 3, findings[0].Line)
	assert.Contains(t, findings[0].Message, "enable_monitoring")
}

func TestStringBooleanRule_Validation(t *testing.T) {
	rule := &rules.StringBooleanRule{}

	ctx := ctxFor(map[string]string{
		"variables.tf": `variable "enable_backup" {
  type = string

  validation {
    condition     = contains(["yes", "no"], var.enable_backup)
    error_message = "must be yes or no."
  }
}
`,
	})

	findings := rule.Check(ctx)
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "enable_backup")
}

func TestMissingValidationRule(t *testing.T) {
	rule := &rules.MissingValidationRule{}

	ctx := ctxFor(map[string]string{
		"variables.tf": `variable "ip_address" {
  description = "Allowed management IP"
  type        = string
}

variable "location" {
  type    = string
  default = "eastus"
}

variable "subnet_count" {
  type = number

  validation {
    condition     = var.subnet_count > 0
    error_message = "must be positive."
  }
}

variable "tags" {
  type    = map(string)
  default = {}
}
`,
	})

	findings := rule.Check(ctx)
	require.Len(t, findings, 1)
	assert.Equal(t, 1, findings[0].Line)
	assert.Contains(t, findings[0].Message, "ip_address")
}

func TestCountNotForEachRule(t *testing.T) {
	rule := &rules.CountNotForEachRule{}

	ctx := ctxFor(map[string]string{
		"main.tf": `resource "azurerm_storage_account" "primary" {
  name = "${var.deployment_prefix}st"
}

resource "azurerm_storage_account" "replicas" {
  count = 2
  name  = "${var.deployment_prefix}st${count.index}"
}

resource "azurerm_subnet" "only" {
  count = 3
  name  = "${var.deployment_prefix}-subnet"
}
`,
	})

	findings := rule.Check(ctx)
	require.Len(t, findings, 1, "count on the only block of a type is fine")
	assert.Equal(t, 6, findings[0].Line)
	assert.Contains(t, findings[0].Message, "azurerm_storage_account.replicas")
}

func TestMissingSensitiveRule(t *testing.T) {
	rule := &rules.MissingSensitiveRule{}

	ctx := ctxFor(map[string]string{
		"variables.tf": `variable "db_password" {
  type = string
}

variable "admin_password" {
  type      = string
  sensitive = true
}

variable "location" {
  type = string
}
`,
		"outputs.tf": `output "api_token" {
  value = azurerm_api_management.main.token
}

output "storage_account_name" {
  value = azurerm_storage_account.main.name
}
`,
	})

	findings := rule.Check(ctx)
	require.Len(t, findings, 2)
	assert.Contains(t, findings[0].Message, "api_token")
	assert.Contains(t, findings[1].Message, "db_password")
}

func TestPermissiveSecurityRule(t *testing.T) {
	rule := &rules.PermissiveSecurityRule{}

	ctx := ctxFor(map[string]string{
		"resource_network.tf": `resource "azurerm_network_security_group" "open" {
  security_rule {
    name                       = "allow_all"
    access                     = "Allow"
    source_address_prefix      = "*"
    destination_address_prefix = "*"
  }

  security_rule {
    name                       = "scoped"
    access                     = "Allow"
    source_address_prefix      = "10.0.0.0/16"
    destination_address_prefix = "*"
  }
}
`,
	})

	findings := rule.Check(ctx)
	require.Len(t, findings, 1)
	assert.Equal(t, domain.SeverityError, findings[0].Severity)
	assert.Equal(t, 5, findings[0].Line)
}

func TestPermissiveSecurityRule_DenyIsFine(t *testing.T) {
	rule := &rules.PermissiveSecurityRule{}

	ctx := ctxFor(map[string]string{
		"resource_network.tf": `resource "azurerm_network_security_group" "deny" {
  security_rule {
    name                       = "deny_all"
    access                     = "Deny"
    source_address_prefix      = "*"
    destination_address_prefix = "*"
  }
}
`,
	})

	assert.Empty(t, rule.Check(ctx))
}

func TestHardcodedSecretRule(t *testing.T) {
	rule := &rules.HardcodedSecretRule{}

	ctx := ctxFor(map[string]string{
		"main.tf": `resource "azurerm_app_service" "api" {
  primary_access_key = "9f8e7d6c5b4a3210fedcba98"
  client_secret      = var.client_secret
  api_token          = local.api_token
  admin_password     = "${var.admin_password}"
}
`,
	})

	findings := rule.Check(ctx)
	require.Len(t, findings, 1)
	assert.Equal(t, domain.SeverityError, findings[0].Severity)
	assert.Equal(t, 2, findings[0].Line)
	assert.Contains(t, findings[0].Message, "primary_access_key")
}
