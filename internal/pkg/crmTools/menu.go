package crmTools

import (
	"github.com/cloudwego/eino/schema"
)

const (
	SearchByContactID        = "search_by_contact_id"
	GetMobilePhoneNumber     = "get_mobile_phone_number"
	UpdateContactPhoneNumber = "update_contact_phone_number"
	GetContactAddress        = "get_contact_address"
)

// Menu is the fixed set of operations offered to the chat model. The names
// and parameter schemas here must stay in lockstep with the dispatch table
// in dispatch.go.
func Menu() []*schema.ToolInfo {
	contactIdParam := &schema.ParameterInfo{
		Type:     schema.String,
		Desc:     "The contact ID, e.g. C0001",
		Required: true,
	}

	return []*schema.ToolInfo{
		{
			Name: SearchByContactID,
			Desc: "Look up a contact record by its contact ID",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"contactId": contactIdParam,
			}),
		},
		{
			Name: GetMobilePhoneNumber,
			Desc: "Get the mobile phone number of a contact",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"contactId": contactIdParam,
			}),
		},
		{
			Name: UpdateContactPhoneNumber,
			Desc: "Update the mobile phone number of a contact",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"contactId": contactIdParam,
				"mobileNumber": {
					Type:     schema.String,
					Desc:     "The new mobile phone number",
					Required: true,
				},
			}),
		},
		{
			Name: GetContactAddress,
			Desc: "Get the postal address of a contact",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"contactId": contactIdParam,
			}),
		},
	}
}
