package scaffold

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// providerSpec describes the default provider pin per cloud.
type providerSpec struct {
	name    string
	source  string
	version string
	region  string
}

var cloudProviders = map[string]providerSpec{
	CloudAzure: {name: "azurerm", source: "hashicorp/azurerm", version: "~> 3.0", region: "eastus"},
	CloudAWS:   {name: "aws", source: "hashicorp/aws", version: "~> 5.0", region: "us-east-1"},
	CloudGCP:   {name: "google", source: "hashicorp/google", version: "~> 5.0", region: "us-central1"},
}

// versionsFile renders versions.tf with pinned terraform and provider versions.
func versionsFile(cloud string) string {
	spec := cloudProviders[cloud]

	f := hclwrite.NewEmptyFile()
	tf := f.Body().AppendNewBlock("terraform", nil)
	tf.Body().SetAttributeValue("required_version", cty.StringVal(">= 1.5"))
	tf.Body().AppendNewline()

	rp := tf.Body().AppendNewBlock("required_providers", nil)
	rp.Body().SetAttributeValue(spec.name, cty.ObjectVal(map[string]cty.Value{
		"source":  cty.StringVal(spec.source),
		"version": cty.StringVal(spec.version),
	}))

	return string(hclwrite.Format(f.Bytes()))
}

// variablesFile renders variables.tf. Every required variable carries a
// validation block so scaffolded projects validate cleanly from day one.
func variablesFile(name string) string {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	prefix := body.AppendNewBlock("variable", []string{"deployment_prefix"})
	prefix.Body().SetAttributeValue("description", cty.StringVal("Naming prefix for all deployed resources"))
	prefix.Body().SetAttributeRaw("type", tokensForExpression("string"))
	prefix.Body().AppendNewline()
	v := prefix.Body().AppendNewBlock("validation", nil)
	v.Body().SetAttributeRaw("condition", tokensForExpression(`can(regex("^[a-z0-9]{3,10}$", var.deployment_prefix))`))
	v.Body().SetAttributeValue("error_message", cty.StringVal("deployment_prefix must be 3-10 lowercase alphanumeric characters."))
	body.AppendNewline()

	location := body.AppendNewBlock("variable", []string{"location"})
	location.Body().SetAttributeValue("description", cty.StringVal("Cloud region for deployment"))
	location.Body().SetAttributeRaw("type", tokensForExpression("string"))
	location.Body().AppendNewline()
	v = location.Body().AppendNewBlock("validation", nil)
	v.Body().SetAttributeRaw("condition", tokensForExpression(`can(regex("^[a-z0-9-]+$", var.location))`))
	v.Body().SetAttributeValue("error_message", cty.StringVal("location must be a lowercase region name."))
	body.AppendNewline()

	env := body.AppendNewBlock("variable", []string{"environment"})
	env.Body().SetAttributeValue("description", cty.StringVal("Environment name"))
	env.Body().SetAttributeRaw("type", tokensForExpression("string"))
	env.Body().AppendNewline()
	v = env.Body().AppendNewBlock("validation", nil)
	v.Body().SetAttributeRaw("condition", tokensForExpression(`contains(["dev", "staging", "prod"], var.environment)`))
	v.Body().SetAttributeValue("error_message", cty.StringVal("environment must be one of: dev, staging, prod."))
	body.AppendNewline()

	tags := body.AppendNewBlock("variable", []string{"tags"})
	tags.Body().SetAttributeValue("description", cty.StringVal("Tags applied to all resources"))
	tags.Body().SetAttributeRaw("type", tokensForExpression("map(string)"))
	tags.Body().SetAttributeRaw("default", tokensForExpression("{}"))

	header := fmt.Sprintf("# Project: %s\n# Input variables\n\n", name)
	return header + string(hclwrite.Format(f.Bytes()))
}

// localsConstantsFile renders locals_constants.tf, the home for values the
// magic-number rule would otherwise flag inline.
func localsConstantsFile() string {
	f := hclwrite.NewEmptyFile()
	locals := f.Body().AppendNewBlock("locals", nil)
	locals.Body().SetAttributeValue("https_port", cty.NumberIntVal(443))
	locals.Body().SetAttributeValue("ssh_port", cty.NumberIntVal(22))
	locals.Body().SetAttributeValue("default_disk_size_gb", cty.NumberIntVal(64))

	header := "# Named constants. Reference these as local.<name> instead of\n# hardcoding ports, sizes, and zones in resource files.\n\n"
	return header + string(hclwrite.Format(f.Bytes()))
}

// outputsFile renders an empty outputs.tf ready for definitions.
func outputsFile(name string) string {
	return fmt.Sprintf("# Project: %s\n# Output definitions. All outputs live in this file.\n", name)
}

// tfvarsExampleFile renders terraform.tfvars.example with starter values.
func tfvarsExampleFile(name, cloud string) string {
	spec := cloudProviders[cloud]

	f := hclwrite.NewEmptyFile()
	body := f.Body()
	body.SetAttributeValue("deployment_prefix", cty.StringVal("myapp"))
	body.SetAttributeValue("location", cty.StringVal(spec.region))
	body.SetAttributeValue("environment", cty.StringVal("dev"))
	body.AppendNewline()
	body.SetAttributeValue("tags", cty.ObjectVal(map[string]cty.Value{
		"project":     cty.StringVal(name),
		"managed_by":  cty.StringVal("terraform"),
		"environment": cty.StringVal("dev"),
	}))

	header := fmt.Sprintf("# %s - example configuration\n# Copy to terraform.tfvars and edit.\n\n", name)
	return header + string(hclwrite.Format(f.Bytes()))
}
